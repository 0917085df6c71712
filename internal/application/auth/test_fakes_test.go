package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/admindash/auth-service/internal/domain"
)

/*
Shared audit capture
*/

type auditEntry struct {
	action string
	fields map[string]string
}

/*
Fakes for ports
*/

type fakeUserRepo struct {
	mu sync.Mutex

	byID    map[string]domain.User
	byEmail map[string]domain.User

	// injected errors (if set, method returns error)
	getByEmailErr error
	getByIDErr    error
	createErr     error
	approveErr    error

	approvedIDs []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]domain.User{},
		byEmail: map[string]domain.User{},
	}
}

func (f *fakeUserRepo) add(u domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	u.PasswordHash = ""
	return u, nil
}

func (f *fakeUserRepo) GetByEmailWithPassword(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByIDErr != nil {
		return domain.User{}, f.getByIDErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	u.PasswordHash = ""
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	if _, exists := f.byEmail[u.Email]; exists {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) Approve(ctx context.Context, id string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.approveErr != nil {
		return domain.User{}, f.approveErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	u.IsApproved = true
	f.byID[id] = u
	f.byEmail[u.Email] = u
	f.approvedIDs = append(f.approvedIDs, id)
	return u, nil
}

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error
}

func (f *fakeHasher) Hash(pw string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (f *fakeHasher) Compare(hash, pw string) error {
	if f.compareFn != nil {
		return f.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return domain.ErrInvalidCredentials()
	}
	return nil
}

type fakeSigner struct {
	mu     sync.Mutex
	signFn func(userID, email, role string, ttl time.Duration) (string, error)

	// last call capture
	lastUserID string
	lastTTL    time.Duration
}

func (f *fakeSigner) SignSessionToken(userID, email, role string, ttl time.Duration) (string, error) {
	f.mu.Lock()
	f.lastUserID = userID
	f.lastTTL = ttl
	f.mu.Unlock()

	if f.signFn != nil {
		return f.signFn(userID, email, role, ttl)
	}
	return "token:" + userID, nil
}

func (f *fakeSigner) VerifySessionToken(token string) (TokenClaims, error) {
	if len(token) > 6 && token[:6] == "token:" {
		return TokenClaims{UserID: token[6:]}, nil
	}
	return TokenClaims{}, domain.ErrTokenInvalid()
}

type fakePublisher struct {
	mu         sync.Mutex
	registered []RegistrationSubmittedEvent
	approved   []UserApprovedEvent

	publishErr error
}

func (f *fakePublisher) PublishRegistrationSubmitted(ctx context.Context, evt RegistrationSubmittedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return f.publishErr
	}
	f.registered = append(f.registered, evt)
	return nil
}

func (f *fakePublisher) PublishUserApproved(ctx context.Context, evt UserApprovedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return f.publishErr
	}
	f.approved = append(f.approved, evt)
	return nil
}

/*
Service factory
*/

func newSvcForTest(t *testing.T) (*Service, *fakeUserRepo, *fakeHasher, *fakeSigner, *fakePublisher, *[]auditEntry) {
	t.Helper()

	users := newFakeUserRepo()
	hasher := &fakeHasher{}
	signer := &fakeSigner{}
	pub := &fakePublisher{}

	audits := &[]auditEntry{}
	cfg := Config{
		SessionTTL:  24 * time.Hour,
		RememberTTL: 30 * 24 * time.Hour,
	}

	svc := NewService(users, hasher, signer, pub, cfg).
		WithAudit(func(action string, fields map[string]string) {
			cp := map[string]string{}
			for k, v := range fields {
				cp[k] = v
			}
			*audits = append(*audits, auditEntry{action: action, fields: cp})
		})

	if svc == nil {
		t.Fatalf("svc is nil")
	}

	return svc, users, hasher, signer, pub, audits
}
