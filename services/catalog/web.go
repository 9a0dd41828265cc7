package catalog

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/salessimulator/lib/mycontext"
	"github.com/MarcGrol/salessimulator/lib/myerrors"
	"github.com/MarcGrol/salessimulator/lib/myhttp"
	"github.com/MarcGrol/salessimulator/lib/mylog"
)

type webService struct {
	searcher Searcher
	logger   mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(searcher Searcher) *webService {
	return &webService{
		searcher: searcher,
		logger:   mylog.New("catalog"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/product", s.searchProducts()).Methods("GET")

	return nil
}

func (s *webService) searchProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		term := r.URL.Query().Get("term")

		s.logger.Log(c, "", mylog.SeverityInfo, "Search products with term '%s'", term)

		found, err := s.searcher.Search(c, term)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, SearchResponse{
			Term:     term,
			Products: found,
		})
	}
}
