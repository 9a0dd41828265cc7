package salessim

import (
	"context"

	"github.com/MarcGrol/salessimulator/lib/mylog"
)

func (s *service) createSession(c context.Context, accountContextID string) (SessionSnapshot, error) {
	session := s.registry.Create(c, accountContextID)

	s.logger.Log(c, session.UID, mylog.SeverityInfo, "Created session %s for account '%s'", session.UID, accountContextID)

	return session.Snapshot()
}

func (s *service) getSession(c context.Context, sessionUID string) (SessionSnapshot, error) {
	session, err := s.registry.Get(sessionUID)
	if err != nil {
		return SessionSnapshot{}, err
	}
	return session.Snapshot()
}

func (s *service) closeSession(c context.Context, sessionUID string) error {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Close session %s", sessionUID)

	return s.registry.Delete(sessionUID)
}

func (s *service) changeSearchTerm(c context.Context, sessionUID string, rawText string) (SessionSnapshot, error) {
	session, err := s.registry.Get(sessionUID)
	if err != nil {
		return SessionSnapshot{}, err
	}

	s.logger.Log(c, sessionUID, mylog.SeverityDebug, "Input changed to '%s'", rawText)
	session.Search.OnInputChange(rawText)

	return session.Snapshot()
}

func (s *service) addProduct(c context.Context, sessionUID string, form addProductForm) (SessionSnapshot, error) {
	session, err := s.registry.Get(sessionUID)
	if err != nil {
		return SessionSnapshot{}, err
	}

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Add product %s (%s) at %s", form.ID, form.Name, form.Price)

	err = session.Search.OnAddClicked(form.ID, form.Name, form.Price)
	if err != nil {
		return SessionSnapshot{}, err
	}

	return session.Snapshot()
}

func (s *service) removeItem(c context.Context, sessionUID string, productID string) (SessionSnapshot, error) {
	session, err := s.registry.Get(sessionUID)
	if err != nil {
		return SessionSnapshot{}, err
	}

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Remove product %s", productID)

	err = session.Cart.RemoveItem(productID)
	if err != nil {
		return SessionSnapshot{}, err
	}

	return session.Snapshot()
}

func (s *service) convertCurrency(c context.Context, sessionUID string, target string) (SessionSnapshot, error) {
	session, err := s.registry.Get(sessionUID)
	if err != nil {
		return SessionSnapshot{}, err
	}

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Convert total to %s", target)

	err = session.Cart.ConvertCurrency(c, target)
	if err != nil {
		return SessionSnapshot{}, err
	}

	return session.Snapshot()
}

func (s *service) submitOrder(c context.Context, sessionUID string) (SessionSnapshot, error) {
	session, err := s.registry.Get(sessionUID)
	if err != nil {
		return SessionSnapshot{}, err
	}

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Submit order for account '%s'", session.AccountContextID)

	err = session.Cart.SubmitOrder(c, session.AccountContextID)
	if err != nil {
		return SessionSnapshot{}, err
	}

	return session.Snapshot()
}

func (s *service) drainNotifications(c context.Context, sessionUID string) ([]Notification, error) {
	session, err := s.registry.Get(sessionUID)
	if err != nil {
		return nil, err
	}
	return session.Notifications.Drain(), nil
}
