package api

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"

	"hrvibe/internal/domain"
	sessionstore "hrvibe/internal/session"
)

const (
	cookieName = "hrvibe-session"

	usernameKey  = "username"
	firstNameKey = "first_name"
	lastNameKey  = "last_name"
	cityKey      = "city"
	countryKey   = "country"
	roleKey      = "role"
)

// sessionCache persists the resolved session across reloads in a signed
// cookie, the way the browser client kept it in local storage. Only guest
// sessions are trusted from the cache; admin sessions are always
// re-validated against the backend cookie.
type sessionCache struct {
	store *sessions.CookieStore
}

func newSessionCache(key string) *sessionCache {
	store := sessions.NewCookieStore([]byte(key))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	store.Options.MaxAge = 7 * 24 * 60 * 60
	return &sessionCache{store: store}
}

func (c *sessionCache) load(r *http.Request) *domain.Session {
	sess, err := c.store.Get(r, cookieName)
	if err != nil || sess.IsNew {
		return nil
	}
	role, _ := sess.Values[roleKey].(string)
	if role == "" {
		return nil
	}
	return &domain.Session{
		Username:  getString(sess, usernameKey),
		FirstName: getString(sess, firstNameKey),
		LastName:  getString(sess, lastNameKey),
		City:      getString(sess, cityKey),
		Country:   getString(sess, countryKey),
		Role:      domain.Role(role),
	}
}

func (c *sessionCache) save(w http.ResponseWriter, r *http.Request, s domain.Session) error {
	sess, _ := c.store.Get(r, cookieName)
	sess.Values[usernameKey] = s.Username
	sess.Values[firstNameKey] = s.FirstName
	sess.Values[lastNameKey] = s.LastName
	sess.Values[cityKey] = s.City
	sess.Values[countryKey] = s.Country
	sess.Values[roleKey] = string(s.Role)
	return sess.Save(r, w)
}

func (c *sessionCache) clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := c.store.Get(r, cookieName)
	sess.Options.MaxAge = -1 // delete immediately
	return sess.Save(r, w)
}

func getString(sess *sessions.Session, key string) string {
	v, _ := sess.Values[key].(string)
	return v
}

type ctxKey string

const currentSessionKey ctxKey = "currentSession"

// CurrentSession returns the session the guard injected into the request
// context.
func CurrentSession(r *http.Request) (*domain.Session, bool) {
	s, ok := r.Context().Value(currentSessionKey).(*domain.Session)
	return s, ok
}

// RequireSession is the route guard. While the store is resolving it
// serves a loading placeholder, never a redirect. An unauthenticated
// result is given one grace retry (wait a fixed delay, re-trigger
// resolution once) before the guard commits to redirecting to /login.
func (api *API) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cached := api.cache.load(r)

		st := api.sessions.State()
		if st.Phase == sessionstore.Resolving {
			respondWithJSON(w, map[string]string{"status": "resolving"})
			return
		}
		if st.Phase == sessionstore.Unresolved {
			st = api.sessions.Resolve(r.Context(), cached)
		}

		if st.Phase == sessionstore.Unauthenticated {
			retried := false
			api.graceOnce.Do(func() {
				retried = true
				api.sleep(api.grace)
				if api.sessions.InvalidateForRetry() {
					st = api.sessions.Resolve(r.Context(), cached)
				}
			})
			if !retried {
				st = api.sessions.State()
			}
		}

		if st.Phase != sessionstore.Authenticated || st.Session == nil {
			api.log.Warnw("unauthenticated request, redirecting to login", "path", r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), currentSessionKey, st.Session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
