package salessim

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/salessimulator/lib/mycontext"
	"github.com/MarcGrol/salessimulator/lib/myerrors"
	"github.com/MarcGrol/salessimulator/lib/myhttp"
	"github.com/MarcGrol/salessimulator/lib/mylog"
)

type createSessionForm struct {
	AccountID string `form:"accountId"`
}

type searchForm struct {
	Term string `form:"term"`
}

type addProductForm struct {
	ID    string `form:"id"`
	Name  string `form:"name"`
	Price string `form:"price"`
}

type webService struct {
	service *service
	decoder *formcodec.Decoder
	logger  mylog.Logger
}

func NewService(registry *SessionRegistry) *webService {
	logger := mylog.New("salessim")
	return &webService{
		service: newService(registry, logger),
		decoder: formcodec.NewDecoder(),
		logger:  logger,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/session", s.createSession()).Methods("POST")
	router.HandleFunc("/api/session/{sessionUID}", s.getSession()).Methods("GET")
	router.HandleFunc("/api/session/{sessionUID}", s.closeSession()).Methods("DELETE")
	router.HandleFunc("/api/session/{sessionUID}/search", s.changeSearchTerm()).Methods("PUT")
	router.HandleFunc("/api/session/{sessionUID}/product", s.addProduct()).Methods("POST")
	router.HandleFunc("/api/session/{sessionUID}/cart/{productID}", s.removeItem()).Methods("DELETE")
	router.HandleFunc("/api/session/{sessionUID}/currency/{currency}", s.convertCurrency()).Methods("POST")
	router.HandleFunc("/api/session/{sessionUID}/order", s.submitOrder()).Methods("POST")
	router.HandleFunc("/api/session/{sessionUID}/notification", s.drainNotifications()).Methods("GET")

	return nil
}

func (s *webService) decodeForm(r *http.Request, v any) error {
	err := r.ParseForm()
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}
	return s.decodeValues(r.Form, v)
}

func (s *webService) decodeValues(values url.Values, v any) error {
	err := s.decoder.Decode(v, values)
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %w", err))
	}
	return nil
}

func (s *webService) createSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		form := createSessionForm{}
		err := s.decodeForm(r, &form)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		snapshot, err := s.service.createSession(c, form.AccountID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("%s/api/session/%s", myhttp.HostnameWithScheme(r), snapshot.UID))
		errorWriter.Write(c, w, http.StatusCreated, snapshot)
	}
}

func (s *webService) getSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		snapshot, err := s.service.getSession(c, mux.Vars(r)["sessionUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, snapshot)
	}
}

func (s *webService) closeSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]
		err := s.service.closeSession(c, sessionUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Session %s closed", sessionUID),
		})
	}
}

func (s *webService) changeSearchTerm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		form := searchForm{}
		err := s.decodeForm(r, &form)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		snapshot, err := s.service.changeSearchTerm(c, mux.Vars(r)["sessionUID"], form.Term)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusAccepted, snapshot)
	}
}

func (s *webService) addProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		form := addProductForm{}
		err := s.decodeForm(r, &form)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		snapshot, err := s.service.addProduct(c, mux.Vars(r)["sessionUID"], form)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, snapshot)
	}
}

func (s *webService) removeItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		snapshot, err := s.service.removeItem(c, mux.Vars(r)["sessionUID"], mux.Vars(r)["productID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, snapshot)
	}
}

func (s *webService) convertCurrency() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		snapshot, err := s.service.convertCurrency(c, mux.Vars(r)["sessionUID"], mux.Vars(r)["currency"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, snapshot)
	}
}

func (s *webService) submitOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		snapshot, err := s.service.submitOrder(c, mux.Vars(r)["sessionUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, snapshot)
	}
}

func (s *webService) drainNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		notifications, err := s.service.drainNotifications(c, mux.Vars(r)["sessionUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, notifications)
	}
}
