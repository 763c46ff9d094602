package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory repository fakes shared by the service tests. The delete
// fakes mirror the schema's RESTRICT constraints: rows still referenced
// by a checkout refuse to go, surfacing the same SQLSTATE the real
// database would.

func fkViolation(table string, id uuid.UUID) error {
	return fmt.Errorf("delete %s %s: %w", table, id.String(), &pgconn.PgError{Code: "23503"})
}

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:           "test-secret",
			AccessExpiryMins: 15,
			RefreshExpiryHrs: 168,
		},
		OTP: utils.OTPConfig{
			ExpiryMinutes:   5,
			RequestsPerHour: 10,
		},
	}
}

func newTestRepository() *repository.Repository {
	checkouts := newFakeCheckoutRepo()
	return &repository.Repository{
		User:           newFakeUserRepo(),
		OTP:            newFakeOTPRepo(),
		OTPLimit:       newFakeLimiter(),
		GoodCategory:   newFakeCategoryRepo(),
		Good:           newFakeGoodRepo(),
		PaymentMethod:  newFakePaymentMethodRepo(checkouts),
		DeliveryMethod: newFakeDeliveryMethodRepo(checkouts),
		Recipient:      newFakeRecipientRepo(checkouts),
		BasketItem:     newFakeBasketRepo(checkouts),
		Checkout:       checkouts,
		Transaction:    newFakeTransactionRepo(),
	}
}

// ==================== USERS ====================

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) GetOrCreate(_ context.Context, user *entity.User) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.users[user.Email]; ok {
		out := *existing
		return &out, nil
	}
	stored := *user
	f.users[user.Email] = &stored
	out := stored
	return &out, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ID == id {
			out := *user
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[email]; ok {
		out := *user
		return &out, nil
	}
	return nil, nil
}

// ==================== OTPS ====================

type fakeOTPRepo struct {
	mu   sync.Mutex
	otps []entity.OTP
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{}
}

func (f *fakeOTPRepo) Create(_ context.Context, otp *entity.OTP) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.otps = append(f.otps, *otp)
	return nil
}

func (f *fakeOTPRepo) FindLatest(_ context.Context, email, code string) (*entity.OTP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *entity.OTP
	for i := range f.otps {
		otp := &f.otps[i]
		if otp.Email != email || otp.Code != code {
			continue
		}
		if latest == nil || otp.CreatedAt.After(latest.CreatedAt) {
			latest = otp
		}
	}
	if latest == nil {
		return nil, nil
	}
	out := *latest
	return &out, nil
}

func (f *fakeOTPRepo) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.otps {
		if f.otps[i].ID == id {
			f.otps = append(f.otps[:i], f.otps[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOTPRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.otps)
}

// ==================== LIMITER ====================

type fakeLimiter struct {
	mu     sync.Mutex
	counts map[string]int
}

func newFakeLimiter() *fakeLimiter {
	return &fakeLimiter{counts: make(map[string]int)}
}

func (f *fakeLimiter) Allow(_ context.Context, email string, maxPerHour int) (bool, error) {
	if maxPerHour <= 0 {
		return true, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[email]++
	return f.counts[email] <= maxPerHour, nil
}

// ==================== MAILER ====================

type fakeMailer struct {
	sent chan string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan string, 16)}
}

func (f *fakeMailer) Send(_ context.Context, to, _, body string) error {
	f.sent <- to + "|" + body
	return nil
}

func (f *fakeMailer) waitForMail(timeout time.Duration) (string, bool) {
	select {
	case msg := <-f.sent:
		return msg, true
	case <-time.After(timeout):
		return "", false
	}
}

// ==================== CATEGORIES ====================

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*entity.GoodCategory
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.GoodCategory)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.GoodCategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *category
	f.categories[category.ID] = &stored
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.GoodCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if category, ok := f.categories[id]; ok {
		out := *category
		return &out, nil
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.GoodCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*entity.GoodCategory, 0, len(f.categories))
	for _, category := range f.categories {
		out := *category
		all = append(all, &out)
	}
	return window(all, limit, offset), nil
}

func (f *fakeCategoryRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.categories)), nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *entity.GoodCategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *category
	f.categories[category.ID] = &stored
	return nil
}

// Delete detaches child categories the way the schema's ON DELETE SET
// NULL does.
func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.categories, id)
	for _, category := range f.categories {
		if category.ParentID != nil && *category.ParentID == id {
			category.ParentID = nil
		}
	}
	return nil
}

// ==================== GOODS ====================

type fakeGoodRepo struct {
	mu    sync.Mutex
	goods map[uuid.UUID]*entity.Good
}

func newFakeGoodRepo() *fakeGoodRepo {
	return &fakeGoodRepo{goods: make(map[uuid.UUID]*entity.Good)}
}

func (f *fakeGoodRepo) Create(_ context.Context, good *entity.Good) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *good
	f.goods[good.ID] = &stored
	return nil
}

func (f *fakeGoodRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Good, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if good, ok := f.goods[id]; ok {
		out := *good
		return &out, nil
	}
	return nil, nil
}

func (f *fakeGoodRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Good, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*entity.Good, 0, len(f.goods))
	for _, good := range f.goods {
		out := *good
		all = append(all, &out)
	}
	return window(all, limit, offset), nil
}

func (f *fakeGoodRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.goods)), nil
}

func (f *fakeGoodRepo) Update(_ context.Context, good *entity.Good) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *good
	f.goods[good.ID] = &stored
	return nil
}

func (f *fakeGoodRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.goods, id)
	return nil
}

// ==================== PAYMENT METHODS ====================

type fakePaymentMethodRepo struct {
	mu        sync.Mutex
	methods   map[uuid.UUID]*entity.PaymentMethod
	checkouts *fakeCheckoutRepo
}

func newFakePaymentMethodRepo(checkouts *fakeCheckoutRepo) *fakePaymentMethodRepo {
	return &fakePaymentMethodRepo{
		methods:   make(map[uuid.UUID]*entity.PaymentMethod),
		checkouts: checkouts,
	}
}

func (f *fakePaymentMethodRepo) Create(_ context.Context, method *entity.PaymentMethod) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *method
	f.methods[method.ID] = &stored
	return nil
}

func (f *fakePaymentMethodRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if method, ok := f.methods[id]; ok {
		out := *method
		return &out, nil
	}
	return nil, nil
}

func (f *fakePaymentMethodRepo) FindAll(_ context.Context) ([]*entity.PaymentMethod, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*entity.PaymentMethod, 0, len(f.methods))
	for _, method := range f.methods {
		out := *method
		all = append(all, &out)
	}
	return all, nil
}

func (f *fakePaymentMethodRepo) Update(_ context.Context, method *entity.PaymentMethod) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *method
	f.methods[method.ID] = &stored
	return nil
}

func (f *fakePaymentMethodRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.checkouts.references(func(c *entity.Checkout) bool { return c.PaymentMethodID == id }) {
		return fkViolation("payment method", id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.methods, id)
	return nil
}

// ==================== DELIVERY METHODS ====================

type fakeDeliveryMethodRepo struct {
	mu        sync.Mutex
	methods   map[uuid.UUID]*entity.DeliveryMethod
	checkouts *fakeCheckoutRepo
}

func newFakeDeliveryMethodRepo(checkouts *fakeCheckoutRepo) *fakeDeliveryMethodRepo {
	return &fakeDeliveryMethodRepo{
		methods:   make(map[uuid.UUID]*entity.DeliveryMethod),
		checkouts: checkouts,
	}
}

func (f *fakeDeliveryMethodRepo) Create(_ context.Context, method *entity.DeliveryMethod) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *method
	f.methods[method.ID] = &stored
	return nil
}

func (f *fakeDeliveryMethodRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.DeliveryMethod, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if method, ok := f.methods[id]; ok {
		out := *method
		return &out, nil
	}
	return nil, nil
}

func (f *fakeDeliveryMethodRepo) FindAll(_ context.Context) ([]*entity.DeliveryMethod, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*entity.DeliveryMethod, 0, len(f.methods))
	for _, method := range f.methods {
		out := *method
		all = append(all, &out)
	}
	return all, nil
}

func (f *fakeDeliveryMethodRepo) Update(_ context.Context, method *entity.DeliveryMethod) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *method
	f.methods[method.ID] = &stored
	return nil
}

func (f *fakeDeliveryMethodRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.checkouts.references(func(c *entity.Checkout) bool { return c.DeliveryMethodID == id }) {
		return fkViolation("delivery method", id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.methods, id)
	return nil
}

// ==================== RECIPIENTS ====================

type fakeRecipientRepo struct {
	mu         sync.Mutex
	recipients map[uuid.UUID]*entity.Recipient
	checkouts  *fakeCheckoutRepo
}

func newFakeRecipientRepo(checkouts *fakeCheckoutRepo) *fakeRecipientRepo {
	return &fakeRecipientRepo{
		recipients: make(map[uuid.UUID]*entity.Recipient),
		checkouts:  checkouts,
	}
}

func (f *fakeRecipientRepo) Create(_ context.Context, recipient *entity.Recipient) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *recipient
	f.recipients[recipient.ID] = &stored
	return nil
}

func (f *fakeRecipientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Recipient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if recipient, ok := f.recipients[id]; ok {
		out := *recipient
		return &out, nil
	}
	return nil, nil
}

func (f *fakeRecipientRepo) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Recipient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if recipient, ok := f.recipients[id]; ok && recipient.UserID == userID {
		out := *recipient
		return &out, nil
	}
	return nil, nil
}

func (f *fakeRecipientRepo) FindAllByUser(_ context.Context, userID uuid.UUID) ([]*entity.Recipient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Recipient
	for _, recipient := range f.recipients {
		if recipient.UserID == userID {
			out := *recipient
			all = append(all, &out)
		}
	}
	return all, nil
}

func (f *fakeRecipientRepo) FindAll(_ context.Context) ([]*entity.Recipient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*entity.Recipient, 0, len(f.recipients))
	for _, recipient := range f.recipients {
		out := *recipient
		all = append(all, &out)
	}
	return all, nil
}

func (f *fakeRecipientRepo) Update(_ context.Context, recipient *entity.Recipient) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *recipient
	f.recipients[recipient.ID] = &stored
	return nil
}

func (f *fakeRecipientRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.checkouts.references(func(c *entity.Checkout) bool { return c.RecipientID == id }) {
		return fkViolation("recipient", id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.recipients, id)
	return nil
}

// ==================== BASKET ITEMS ====================

type fakeBasketRepo struct {
	mu        sync.Mutex
	items     map[uuid.UUID]*entity.BasketItem
	checkouts *fakeCheckoutRepo
}

func newFakeBasketRepo(checkouts *fakeCheckoutRepo) *fakeBasketRepo {
	return &fakeBasketRepo{
		items:     make(map[uuid.UUID]*entity.BasketItem),
		checkouts: checkouts,
	}
}

// Upsert mirrors the SQL upsert: an existing (user, good) row wins and
// keeps its stored count.
func (f *fakeBasketRepo) Upsert(_ context.Context, item *entity.BasketItem) (*entity.BasketItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.items {
		if existing.UserID == item.UserID && existing.GoodID == item.GoodID {
			existing.UpdatedAt = item.UpdatedAt
			out := *existing
			return &out, nil
		}
	}
	stored := *item
	f.items[item.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeBasketRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.BasketItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item, ok := f.items[id]; ok {
		out := *item
		return &out, nil
	}
	return nil, nil
}

func (f *fakeBasketRepo) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.BasketItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item, ok := f.items[id]; ok && item.UserID == userID {
		out := *item
		return &out, nil
	}
	return nil, nil
}

func (f *fakeBasketRepo) FindAllByUser(_ context.Context, userID uuid.UUID) ([]*entity.BasketItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.BasketItem
	for _, item := range f.items {
		if item.UserID == userID {
			out := *item
			all = append(all, &out)
		}
	}
	return all, nil
}

func (f *fakeBasketRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, item := range f.items {
		if item.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBasketRepo) UpdateCount(_ context.Context, id uuid.UUID, count int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item, ok := f.items[id]; ok {
		item.Count = count
	}
	return nil
}

func (f *fakeBasketRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.checkouts.references(func(c *entity.Checkout) bool { return c.BasketItemID == id }) {
		return fkViolation("basket item", id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

// ==================== CHECKOUTS ====================

type fakeCheckoutRepo struct {
	mu        sync.Mutex
	checkouts map[uuid.UUID]*entity.Checkout
}

func newFakeCheckoutRepo() *fakeCheckoutRepo {
	return &fakeCheckoutRepo{checkouts: make(map[uuid.UUID]*entity.Checkout)}
}

func (f *fakeCheckoutRepo) Create(_ context.Context, checkout *entity.Checkout) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *checkout
	f.checkouts[checkout.ID] = &stored
	return nil
}

func (f *fakeCheckoutRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Checkout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if checkout, ok := f.checkouts[id]; ok {
		out := *checkout
		return &out, nil
	}
	return nil, nil
}

func (f *fakeCheckoutRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Checkout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*entity.Checkout, 0, len(f.checkouts))
	for _, checkout := range f.checkouts {
		out := *checkout
		all = append(all, &out)
	}
	return window(all, limit, offset), nil
}

func (f *fakeCheckoutRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.checkouts)), nil
}

func (f *fakeCheckoutRepo) Update(_ context.Context, checkout *entity.Checkout) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *checkout
	f.checkouts[checkout.ID] = &stored
	return nil
}

func (f *fakeCheckoutRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.checkouts, id)
	return nil
}

func (f *fakeCheckoutRepo) references(match func(*entity.Checkout) bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, checkout := range f.checkouts {
		if match(checkout) {
			return true
		}
	}
	return false
}

// ==================== TRANSACTIONS ====================

type fakeTransactionRepo struct {
	mu           sync.Mutex
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *tx
	f.transactions[tx.ID] = &stored
	return nil
}

func (f *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if tx, ok := f.transactions[id]; ok {
		out := *tx
		return &out, nil
	}
	return nil, nil
}

func (f *fakeTransactionRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*entity.Transaction, 0, len(f.transactions))
	for _, tx := range f.transactions {
		out := *tx
		all = append(all, &out)
	}
	return window(all, limit, offset), nil
}

func (f *fakeTransactionRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.transactions)), nil
}

func (f *fakeTransactionRepo) Update(_ context.Context, tx *entity.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *tx
	f.transactions[tx.ID] = &stored
	return nil
}

func (f *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.transactions, id)
	return nil
}

// window applies LIMIT/OFFSET semantics to a slice.
func window[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all
}
