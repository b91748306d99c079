package services

import (
	"context"
	"sync"

	"tutorlux_backend/internal/auth"
	"tutorlux_backend/internal/email"
	"tutorlux_backend/internal/models"
	"tutorlux_backend/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[primitive.ObjectID]*models.User
	updates int
	creates int
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *fakeUserRepo) add(u models.User) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	stored := u
	r.users[u.ID] = &stored
	return &u
}

func (r *fakeUserRepo) get(id primitive.ObjectID) models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.users[id]
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) EmailTakenByOther(_ context.Context, email string, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email && u.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, id primitive.ObjectID, c repositories.UserChanges) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	r.updates++
	if c.Email != nil {
		u.Email = *c.Email
	}
	if c.FirstName != nil {
		u.FirstName = *c.FirstName
	}
	if c.LastName != nil {
		u.LastName = *c.LastName
	}
	if c.PasswordHash != nil {
		u.PasswordHash = *c.PasswordHash
	}
	if c.Phone != nil {
		if *c.Phone == "" {
			u.Phone = nil
		} else {
			phone := *c.Phone
			u.Phone = &phone
		}
	}
	return nil
}

type fakeTutorRepo struct {
	tutors    []models.Tutor
	lastLimit int64
	err       error
}

func (r *fakeTutorRepo) FindByCategory(_ context.Context, category string, limit int64) ([]models.Tutor, error) {
	r.lastLimit = limit
	if r.err != nil {
		return nil, r.err
	}
	var out []models.Tutor
	for _, t := range r.tutors {
		for _, c := range t.Categories {
			if c == category {
				out = append(out, t)
				break
			}
		}
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeTutorRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Tutor, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.tutors {
		if r.tutors[i].ID == id {
			return &r.tutors[i], nil
		}
	}
	return nil, repositories.ErrTutorNotFound
}

func (r *fakeTutorRepo) Create(_ context.Context, t *models.Tutor) error {
	r.tutors = append(r.tutors, *t)
	return nil
}

type fakeTokens struct{}

func (fakeTokens) Issue(id auth.Identity) (string, error) {
	return "token-" + id.UserID, nil
}

// recordingEmailService captures calls instead of sending.
type recordingEmailService struct {
	welcomes chan *models.User
	contacts []email.ContactRequest
	err      error
}

func newRecordingEmailService() *recordingEmailService {
	return &recordingEmailService{welcomes: make(chan *models.User, 8)}
}

func (s *recordingEmailService) SendWelcomeAsync(_ context.Context, user *models.User) {
	s.welcomes <- user
}

func (s *recordingEmailService) SendContact(_ context.Context, req email.ContactRequest) error {
	s.contacts = append(s.contacts, req)
	return s.err
}

// fakeProvider records messages on a channel.
type fakeProvider struct {
	sent        chan *email.Message
	sendErr     error
	validateErr error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{sent: make(chan *email.Message, 8)}
}

func (p *fakeProvider) Send(_ context.Context, msg *email.Message) error {
	p.sent <- msg
	return p.sendErr
}

func (p *fakeProvider) Validate() error { return p.validateErr }

// lateDuplicateRepo misses on lookup, as when a concurrent sign-up lands
// between the lookup and the insert.
type lateDuplicateRepo struct {
	*fakeUserRepo
}

func (r lateDuplicateRepo) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
