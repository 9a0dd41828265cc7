package warmup

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/salessimulator/lib/mycontext"
	"github.com/MarcGrol/salessimulator/lib/myerrors"
	"github.com/MarcGrol/salessimulator/lib/myhttp"
	"github.com/MarcGrol/salessimulator/lib/mylog"
	"github.com/MarcGrol/salessimulator/services/catalog"
	"github.com/MarcGrol/salessimulator/services/currency"
)

type webService struct {
	logger       mylog.Logger
	searcher     catalog.Searcher
	rates        currency.RateProvider
	baseCurrency string
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(searcher catalog.Searcher, rates currency.RateProvider, baseCurrency string) *webService {
	return &webService{
		logger:       mylog.New("warmup"),
		searcher:     searcher,
		rates:        rates,
		baseCurrency: baseCurrency,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
}

// warmupPage touches the collaborators every session depends on, so the first real session does not pay for cold connections.
func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		_, err := s.searcher.Search(c, "")
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewUnavailableError(err))
			return
		}

		_, err = s.rates.GetRate(c, s.baseCurrency)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewUnavailableError(err))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed warmup request",
		})
	}
}
