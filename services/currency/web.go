package currency

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/salessimulator/lib/mycontext"
	"github.com/MarcGrol/salessimulator/lib/myerrors"
	"github.com/MarcGrol/salessimulator/lib/myhttp"
	"github.com/MarcGrol/salessimulator/lib/mylog"
)

type webService struct {
	baseCurrency string
	provider     RateProvider
	logger       mylog.Logger
}

func NewService(baseCurrency string, provider RateProvider) *webService {
	return &webService{
		baseCurrency: strings.ToUpper(baseCurrency),
		provider:     provider,
		logger:       mylog.New("currency"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/rate/{base}/{target}", s.getRate()).Methods("GET")

	return nil
}

func (s *webService) getRate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		base := strings.ToUpper(mux.Vars(r)["base"])
		target := strings.ToUpper(mux.Vars(r)["target"])

		if base != s.baseCurrency {
			errorWriter.WriteError(c, w, 1, myerrors.NewNotFoundError(fmt.Errorf("rates are only available for base %s", s.baseCurrency)))
			return
		}

		rate, err := s.provider.GetRate(c, target)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		s.logger.Log(c, target, mylog.SeverityInfo, "Rate %s->%s: %s", base, target, rate)

		errorWriter.Write(c, w, http.StatusOK, RateResponse{
			Base:   base,
			Target: target,
			Rate:   rate,
		})
	}
}
