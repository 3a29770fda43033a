package users

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/patrickmn/go-cache"
	"github.com/zeebo/errs"
)

// Error is the class of store failures.
var Error = errs.Class("users")

var (
	ErrDuplicateEmail = Error.New("email already registered")
	ErrUnknownUser    = Error.New("unknown user")
)

const idPrefix = "id:"

type User struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

type NewUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Store keeps users in memory. Email uniqueness is enforced through an index
// key claimed with cache.Add, which fails when the key already exists.
type Store struct {
	cache  *cache.Cache
	nextID atomic.Int64
}

func NewStore() *Store {
	return &Store{cache: cache.New(cache.NoExpiration, 0)}
}

// Insert stores a new active user and assigns its id.
func (s *Store) Insert(in NewUser) (User, error) {
	email := normalizeEmail(in.Email)
	if err := s.cache.Add(emailKey(email), struct{}{}, cache.NoExpiration); err != nil {
		return User{}, Error.New("%w: %v", ErrDuplicateEmail, err)
	}

	u := User{
		ID:     int(s.nextID.Add(1)),
		Name:   strings.TrimSpace(in.Name),
		Email:  email,
		Active: true,
	}
	s.cache.Set(emailKey(email), u.ID, cache.NoExpiration)
	s.cache.Set(idKey(u.ID), u, cache.NoExpiration)

	return u, nil
}

// Find looks a user up by id.
func (s *Store) Find(id int) (User, bool) {
	v, found := s.cache.Get(idKey(id))
	if !found {
		return User{}, false
	}
	return v.(User), true
}

// Update replaces a stored user.
func (s *Store) Update(u User) error {
	if err := s.cache.Replace(idKey(u.ID), u, cache.NoExpiration); err != nil {
		return Error.New("%w: %v", ErrUnknownUser, err)
	}
	return nil
}

// Count returns the number of stored users.
func (s *Store) Count() int {
	n := 0
	for k := range s.cache.Items() {
		if strings.HasPrefix(k, idPrefix) {
			n++
		}
	}
	return n
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func idKey(id int) string {
	return idPrefix + strconv.Itoa(id)
}

func emailKey(email string) string {
	return "email:" + email
}
