package authhandler

import (
	"sync"
	"time"

	"event-staffing-bff/models"
)

// Sessions tracks recently seen authenticated sessions so the notification
// poll worker knows whose caches to refresh. Entries expire by last-seen
// age, nothing here outlives the process.
var Sessions = &SessionRegistry{}

type ActiveSession struct {
	Session models.UserSession
	Token   string
}

type sessionEntry struct {
	session  models.UserSession
	token    string
	lastSeen time.Time
}

type SessionRegistry struct {
	entries sync.Map // username -> *sessionEntry
}

func (r *SessionRegistry) Touch(session models.UserSession, token string) {
	r.entries.Store(session.Username, &sessionEntry{
		session:  session,
		token:    token,
		lastSeen: time.Now(),
	})
}

// Active returns sessions seen within the window and drops the rest.
func (r *SessionRegistry) Active(window time.Duration) []ActiveSession {
	cutoff := time.Now().Add(-window)
	list := []ActiveSession{}
	r.entries.Range(func(key, value interface{}) bool {
		entry := value.(*sessionEntry)
		if entry.lastSeen.Before(cutoff) {
			r.entries.Delete(key)
			return true
		}
		list = append(list, ActiveSession{Session: entry.session, Token: entry.token})
		return true
	})
	return list
}

func (r *SessionRegistry) Forget(username string) {
	r.entries.Delete(username)
}
