package service

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/salesboard/internal/badges"
	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/repository/repoargs"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

// memStore хранилище в памяти, повторяющее контракты pgrepo. Все операции сериализуются мьютексом,
// InsertIfAbsent атомарен так же, как уникальный индекс в базе.
type memStore struct {
	mu           sync.Mutex
	lastID       int64
	users        []domain.User
	sales        []domain.Sale
	daily        map[dailyKey]domain.DailyActivity
	achievements []domain.Achievement
	feed         []domain.FeedEntry
	messages     []domain.Message
}

type dailyKey struct {
	userID int64
	date   time.Time
}

func newMemStore() *memStore {
	return &memStore{daily: make(map[dailyKey]domain.DailyActivity)}
}

func (s *memStore) nextID() int64 {
	s.lastID++
	return s.lastID
}

func (s *memStore) findUser(id int64) (*domain.User, bool) {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i], true
		}
	}
	return nil, false
}

func (s *memStore) repository(name uow.RepositoryName) (uow.Repository, error) {
	switch repoargs.RepositoryName(name) {
	case repoargs.UserRepoName:
		return &memUserRepo{s: s}, nil
	case repoargs.SaleRepoName:
		return &memSaleRepo{s: s}, nil
	case repoargs.DailyActivityRepoName:
		return &memDailyRepo{s: s}, nil
	case repoargs.AchievementRepoName:
		return &memAchievementRepo{s: s}, nil
	case repoargs.FeedRepoName:
		return &memFeedRepo{s: s}, nil
	case repoargs.MessageRepoName:
		return &memMessageRepo{s: s}, nil
	case repoargs.LeaderboardRepoName:
		return &memLeaderboardRepo{s: s}, nil
	case repoargs.AdminRepoName:
		return &memAdminRepo{s: s}, nil
	}
	return nil, uow.ErrRepositoryNotRegistered
}

type fakeUOW struct {
	store *memStore
}

func (f *fakeUOW) Register(_ uow.RepositoryName, _ uow.RepositoryFactory) error {
	return nil
}

func (f *fakeUOW) Do(ctx context.Context, fn func(ctx context.Context, tx uow.TX) error) error {
	return fn(ctx, fakeTX{store: f.store})
}

func (f *fakeUOW) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	return f.store.repository(name)
}

type fakeTX struct {
	store *memStore
}

func (t fakeTX) Get(name uow.RepositoryName) (uow.Repository, error) {
	return t.store.repository(name)
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) CreateUser(_ context.Context, args repoargs.CreateUser) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == args.Email {
			return nil, domain.ErrDuplicateKey
		}
	}
	now := time.Now()
	user := domain.User{
		ID:           r.s.nextID(),
		CreatedAt:    now,
		LastActive:   now,
		Email:        args.Email,
		Name:         args.Name,
		AvatarColor:  args.AvatarColor,
		PasswordHash: args.PasswordHash,
	}
	r.s.users = append(r.s.users, user)
	return &user, nil
}

func (r *memUserRepo) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *memUserRepo) FindUserByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.findUser(id)
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	user := *u
	return &user, nil
}

func (r *memUserRepo) TouchLastActive(_ context.Context, id int64, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.findUser(id)
	if !ok {
		return domain.ErrRecordNotFound
	}
	u.LastActive = at
	return nil
}

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Create(_ context.Context, args repoargs.CreateSale) (*domain.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.findUser(args.UserID); !ok {
		return nil, domain.ErrRecordNotFound
	}
	sale := domain.Sale{
		ID:          r.s.nextID(),
		CreatedAt:   args.CreatedAt,
		UserID:      args.UserID,
		Amount:      args.Amount,
		Description: args.Description,
	}
	r.s.sales = append(r.s.sales, sale)
	return &sale, nil
}

func (r *memSaleRepo) FindByIDAndUserID(_ context.Context, saleID, userID int64) (*domain.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sale := range r.s.sales {
		if sale.ID == saleID && sale.UserID == userID {
			return &sale, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *memSaleRepo) Delete(_ context.Context, saleID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := slices.IndexFunc(r.s.sales, func(s domain.Sale) bool { return s.ID == saleID })
	if i < 0 {
		return domain.ErrRecordNotFound
	}
	r.s.sales = slices.Delete(r.s.sales, i, i+1)
	return nil
}

func (r *memSaleRepo) GetByUserID(_ context.Context, userID int64, limit uint) ([]domain.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var res []domain.Sale
	for i := len(r.s.sales) - 1; i >= 0 && uint(len(res)) < limit; i-- {
		if r.s.sales[i].UserID == userID {
			res = append(res, r.s.sales[i])
		}
	}
	return res, nil
}

func (r *memSaleRepo) GetAggregate(_ context.Context, userID int64) (*repoargs.SalesAggregate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	agg := repoargs.SalesAggregate{TotalEarnings: decimal.Zero}
	for _, sale := range r.s.sales {
		if sale.UserID != userID {
			continue
		}
		agg.TotalDeals++
		agg.TotalEarnings = agg.TotalEarnings.Add(sale.Amount)
		if !agg.LargestDeal.Valid || sale.Amount.GreaterThan(agg.LargestDeal.Decimal) {
			agg.LargestDeal = decimal.NewNullDecimal(sale.Amount)
		}
		if agg.LastSaleAt == nil || sale.CreatedAt.After(*agg.LastSaleAt) {
			at := sale.CreatedAt
			agg.LastSaleAt = &at
		}
	}
	return &agg, nil
}

type memDailyRepo struct{ s *memStore }

func (r *memDailyRepo) Apply(_ context.Context, delta repoargs.DailyActivityDelta) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	y, m, d := delta.Date.Date()
	key := dailyKey{userID: delta.UserID, date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
	day, ok := r.s.daily[key]
	if !ok {
		day = domain.DailyActivity{UserID: delta.UserID, Date: key.date, Earnings: decimal.Zero}
	}
	day.Earnings = day.Earnings.Add(delta.Earnings)
	day.DealsCount += delta.Deals
	if day.DealsCount <= 0 {
		delete(r.s.daily, key)
		return nil
	}
	r.s.daily[key] = day
	return nil
}

func (r *memDailyRepo) GetByUserID(_ context.Context, userID int64) ([]domain.DailyActivity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var res []domain.DailyActivity
	for key, day := range r.s.daily {
		if key.userID == userID {
			res = append(res, day)
		}
	}
	slices.SortFunc(res, func(a, b domain.DailyActivity) int {
		return b.Date.Compare(a.Date)
	})
	return res, nil
}

type memAchievementRepo struct{ s *memStore }

func (r *memAchievementRepo) InsertIfAbsent(_ context.Context, userID int64, badgeID string, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.achievements {
		if a.UserID == userID && a.BadgeID == badgeID {
			return false, nil
		}
	}
	r.s.achievements = append(r.s.achievements, domain.Achievement{UserID: userID, BadgeID: badgeID, UnlockedAt: at})
	return true, nil
}

func (r *memAchievementRepo) GetByUserID(_ context.Context, userID int64) ([]domain.Achievement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var res []domain.Achievement
	for _, a := range r.s.achievements {
		if a.UserID == userID {
			res = append(res, a)
		}
	}
	return res, nil
}

type memFeedRepo struct{ s *memStore }

func (r *memFeedRepo) Append(_ context.Context, args repoargs.CreateFeedEntry) (*domain.FeedEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.findUser(args.UserID)
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	entry := domain.FeedEntry{
		ID:          r.s.nextID(),
		CreatedAt:   time.Now(),
		UserID:      args.UserID,
		UserName:    u.Name,
		AvatarColor: u.AvatarColor,
		Type:        args.Type,
		Message:     args.Message,
		Amount:      args.Amount,
	}
	r.s.feed = append(r.s.feed, entry)
	return &entry, nil
}

func (r *memFeedRepo) GetRecent(_ context.Context, limit uint) ([]domain.FeedEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var res []domain.FeedEntry
	for i := len(r.s.feed) - 1; i >= 0 && uint(len(res)) < limit; i-- {
		res = append(res, r.s.feed[i])
	}
	return res, nil
}

type memMessageRepo struct{ s *memStore }

func (r *memMessageRepo) Create(_ context.Context, args repoargs.CreateMessage) (*domain.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	from, ok := r.s.findUser(args.FromUserID)
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	msg := domain.Message{
		ID:            r.s.nextID(),
		CreatedAt:     time.Now(),
		FromUserID:    from.ID,
		FromUserName:  from.Name,
		FromUserColor: from.AvatarColor,
		ToUserID:      args.ToUserID,
		Text:          args.Text,
		Type:          args.Type,
	}
	if args.ToUserID != nil {
		to, found := r.s.findUser(*args.ToUserID)
		if !found {
			return nil, domain.ErrRecordNotFound
		}
		name := to.Name
		msg.ToUserName = &name
	}
	r.s.messages = append(r.s.messages, msg)
	return &msg, nil
}

func (r *memMessageRepo) GetRecent(_ context.Context, limit uint) ([]domain.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var res []domain.Message
	for i := len(r.s.messages) - 1; i >= 0 && uint(len(res)) < limit; i-- {
		res = append(res, r.s.messages[i])
	}
	return res, nil
}

type memLeaderboardRepo struct{ s *memStore }

func (r *memLeaderboardRepo) totals() map[int64]decimal.Decimal {
	totals := make(map[int64]decimal.Decimal, len(r.s.users))
	for _, u := range r.s.users {
		totals[u.ID] = decimal.Zero
	}
	for _, sale := range r.s.sales {
		totals[sale.UserID] = totals[sale.UserID].Add(sale.Amount)
	}
	return totals
}

func (r *memLeaderboardRepo) GetStandings(_ context.Context) ([]repoargs.Standing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	totals := r.totals()
	res := make([]repoargs.Standing, 0, len(r.s.users))
	for _, u := range r.s.users {
		st := repoargs.Standing{
			UserID:        u.ID,
			Name:          u.Name,
			AvatarColor:   u.AvatarColor,
			CreatedAt:     u.CreatedAt,
			LastActive:    u.LastActive,
			TotalEarnings: totals[u.ID],
		}
		for _, sale := range r.s.sales {
			if sale.UserID == u.ID {
				st.TotalDeals++
			}
		}
		for key := range r.s.daily {
			if key.userID == u.ID {
				st.DaysActive++
			}
		}
		res = append(res, st)
	}
	slices.SortStableFunc(res, func(a, b repoargs.Standing) int {
		if c := b.TotalEarnings.Cmp(a.TotalEarnings); c != 0 {
			return c
		}
		return int(a.UserID - b.UserID)
	})
	return res, nil
}

func (r *memLeaderboardRepo) CountUsersAbove(_ context.Context, total decimal.Decimal) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, t := range r.totals() {
		if t.GreaterThan(total) {
			count++
		}
	}
	return count, nil
}

type memAdminRepo struct{ s *memStore }

func (r *memAdminRepo) ResetAll(_ context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users = nil
	r.s.sales = nil
	r.s.daily = make(map[dailyKey]domain.DailyActivity)
	r.s.achievements = nil
	r.s.feed = nil
	r.s.messages = nil
	return nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Location() *time.Location {
	return c.Now().Location()
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// recordingBroadcaster запоминает разосланные события.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []domain.Event
}

func (b *recordingBroadcaster) Broadcast(event domain.Event) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	return 1
}

func (b *recordingBroadcaster) Types() []domain.EventType {
	b.mu.Lock()
	defer b.mu.Unlock()
	res := make([]domain.EventType, 0, len(b.events))
	for _, e := range b.events {
		res = append(res, e.Type)
	}
	return res
}

func (b *recordingBroadcaster) Last() domain.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.events[len(b.events)-1]
}

// testEnv собранный набор сервисов поверх memStore.
type testEnv struct {
	store       *memStore
	uow         *fakeUOW
	clock       *fakeClock
	broadcaster *recordingBroadcaster
	services    *AppServices
}

// testLocation опорная таймзона тестов. Намеренно не UTC.
var testLocation = time.FixedZone("UTC-5", -5*60*60)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := newMemStore()
	env := &testEnv{
		store:       store,
		uow:         &fakeUOW{store: store},
		clock:       newFakeClock(time.Date(2024, time.February, 14, 12, 0, 0, 0, testLocation)),
		broadcaster: &recordingBroadcaster{},
	}

	l := logrus.New()
	l.SetOutput(testWriter{t: t})

	services, err := Factory(env.uow, FactoryArgs{
		JWTSecret:   []byte("secret"),
		AdminSecret: "admin-secret",
		Challenge:   Challenge{Goal: 10000, StartDate: "2024-02-01", EndDate: "2024-03-02"},
		Clock:       env.clock,
		Broadcaster: env.broadcaster,
		Logger:      l,
	})
	require.NoError(t, err)
	env.services = services
	return env
}

// addUser создает пользователя напрямую в хранилище, минуя bcrypt.
func (e *testEnv) addUser(t *testing.T, name string) *domain.User {
	t.Helper()
	user, err := (&memUserRepo{s: e.store}).CreateUser(t.Context(), repoargs.CreateUser{
		Email:        gofakeit.Email(),
		Name:         name,
		AvatarColor:  "#3b82f6",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) recordSale(t *testing.T, userID int64, amount string) *RecordSaleResult {
	t.Helper()
	res, err := e.services.SaleService.Record(t.Context(), RecordSaleArgs{
		UserID: userID,
		Amount: decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
	return res
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func badgeIDs(items []badges.Badge) []string {
	res := make([]string, 0, len(items))
	for _, b := range items {
		res = append(res, b.ID)
	}
	return res
}
