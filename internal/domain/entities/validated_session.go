package entities

type ValidatedSession struct {
	*Session
}

func NewValidatedSession(session *Session) (*ValidatedSession, error) {
	if err := session.validate(); err != nil {
		return nil, err
	}

	return &ValidatedSession{Session: session}, nil
}

func (vs *ValidatedSession) GetSession() *Session {
	return vs.Session
}
