package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitclub_backend/internal/email"
	"fitclub_backend/internal/entitlements"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
)

// In-memory repository fakes. The db argument is ignored; services pass
// nil in tests.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) add(user *models.User) *models.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID.String()] = user
	return user
}

func (f *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	f.add(user)
	return nil
}

func (f *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepo) UpdateProfile(_ *gorm.DB, userID string, fields map[string]interface{}) error {
	user, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	if v, ok := fields["name"]; ok {
		user.Name = v.(string)
	}
	if v, ok := fields["height_cm"]; ok {
		h := v.(int)
		user.HeightCm = &h
	}
	if v, ok := fields["weight_kg"]; ok {
		w := v.(float64)
		user.WeightKg = &w
	}
	return nil
}

func (f *fakeUserRepo) UpdateEntitlement(_ *gorm.DB, userID string, grant entitlements.Grant) error {
	user, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	// Nil grant fields keep the prior values, mirroring the SQL path.
	if grant.Tier != nil {
		tier := models.PlanTier(*grant.Tier)
		user.MembershipPlan = &tier
	}
	starts, ends := grant.StartsAt, grant.EndsAt
	user.PlanStartsAt = &starts
	user.PlanEndsAt = &ends
	if grant.TrainersLimit != nil {
		user.TrainersLimit = grant.TrainersLimit
	}
	if grant.FreeProductsPerMonth != nil {
		user.FreeProductsPerMonth = grant.FreeProductsPerMonth
	}
	return nil
}

func (f *fakeUserRepo) SetLegacyTrainer(_ *gorm.DB, userID string, trainerID *string) error {
	user, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.TrainerID = trainerID
	return nil
}

func (f *fakeUserRepo) CountAll(_ *gorm.DB) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) FindByRole(_ *gorm.DB, role models.UserRole) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakeTrainerRepo struct {
	trainers    map[string]*models.Trainer
	assignments map[string]map[string]bool // userID -> trainerID set
}

func newFakeTrainerRepo() *fakeTrainerRepo {
	return &fakeTrainerRepo{
		trainers:    map[string]*models.Trainer{},
		assignments: map[string]map[string]bool{},
	}
}

func (f *fakeTrainerRepo) add(trainer *models.Trainer) *models.Trainer {
	if trainer.ID == uuid.Nil {
		trainer.ID = uuid.New()
	}
	f.trainers[trainer.ID.String()] = trainer
	return trainer
}

func (f *fakeTrainerRepo) FindByID(_ *gorm.DB, id string) (*models.Trainer, error) {
	trainer, ok := f.trainers[id]
	if !ok {
		return nil, repositories.ErrTrainerNotFound
	}
	return trainer, nil
}

func (f *fakeTrainerRepo) FindByEmail(_ *gorm.DB, email string) (*models.Trainer, error) {
	for _, t := range f.trainers {
		if t.Email == email {
			return t, nil
		}
	}
	return nil, repositories.ErrTrainerNotFound
}

func (f *fakeTrainerRepo) FindAll(_ *gorm.DB) ([]models.Trainer, error) {
	var out []models.Trainer
	for _, t := range f.trainers {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTrainerRepo) Create(_ *gorm.DB, trainer *models.Trainer) error {
	for _, t := range f.trainers {
		if t.Email == trainer.Email {
			return repositories.ErrTrainerEmailTaken
		}
	}
	f.add(trainer)
	return nil
}

func (f *fakeTrainerRepo) Update(_ *gorm.DB, trainer *models.Trainer) error {
	f.trainers[trainer.ID.String()] = trainer
	return nil
}

func (f *fakeTrainerRepo) Delete(_ *gorm.DB, id string) error {
	if _, ok := f.trainers[id]; !ok {
		return repositories.ErrTrainerNotFound
	}
	delete(f.trainers, id)
	return nil
}

func (f *fakeTrainerRepo) CountAll(_ *gorm.DB) (int64, error) {
	return int64(len(f.trainers)), nil
}

func (f *fakeTrainerRepo) Assign(_ *gorm.DB, userID, trainerID string) error {
	if f.assignments[userID] == nil {
		f.assignments[userID] = map[string]bool{}
	}
	f.assignments[userID][trainerID] = true
	return nil
}

func (f *fakeTrainerRepo) Unassign(_ *gorm.DB, userID, trainerID string) error {
	if !f.assignments[userID][trainerID] {
		return repositories.ErrAssignmentNotFound
	}
	delete(f.assignments[userID], trainerID)
	return nil
}

func (f *fakeTrainerRepo) IsAssigned(_ *gorm.DB, userID, trainerID string) (bool, error) {
	return f.assignments[userID][trainerID], nil
}

func (f *fakeTrainerRepo) CountForUser(_ *gorm.DB, userID string) (int64, error) {
	return int64(len(f.assignments[userID])), nil
}

func (f *fakeTrainerRepo) FindForUser(_ *gorm.DB, userID string) ([]models.Trainer, error) {
	var out []models.Trainer
	for id := range f.assignments[userID] {
		if t, ok := f.trainers[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTrainerRepo) FindUsersForTrainer(_ *gorm.DB, trainerID string) ([]models.User, error) {
	return nil, nil
}

func (f *fakeTrainerRepo) CountAssignedUsers(_ *gorm.DB) (int64, error) {
	var count int64
	for _, set := range f.assignments {
		if len(set) > 0 {
			count++
		}
	}
	return count, nil
}

type fakePlanRepo struct {
	plans map[string]*models.Plan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[string]*models.Plan{}}
}

func (f *fakePlanRepo) add(plan *models.Plan) *models.Plan {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.plans[plan.ID.String()] = plan
	return plan
}

func (f *fakePlanRepo) FindByID(_ *gorm.DB, id string) (*models.Plan, error) {
	plan, ok := f.plans[id]
	if !ok {
		return nil, repositories.ErrPlanNotFound
	}
	return plan, nil
}

func (f *fakePlanRepo) FindActive(_ *gorm.DB) ([]models.Plan, error) {
	var out []models.Plan
	for _, p := range f.plans {
		if p.Active {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) FindAll(_ *gorm.DB) ([]models.Plan, error) {
	var out []models.Plan
	for _, p := range f.plans {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePlanRepo) Create(_ *gorm.DB, plan *models.Plan) error {
	f.add(plan)
	return nil
}

func (f *fakePlanRepo) Update(_ *gorm.DB, plan *models.Plan) error {
	f.plans[plan.ID.String()] = plan
	return nil
}

func (f *fakePlanRepo) Delete(_ *gorm.DB, id string) error {
	if _, ok := f.plans[id]; !ok {
		return repositories.ErrPlanNotFound
	}
	delete(f.plans, id)
	return nil
}

type fakeShopRepo struct {
	products map[string]*models.Product
	carts    map[string][]models.CartItem // userID -> items
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{
		products: map[string]*models.Product{},
		carts:    map[string][]models.CartItem{},
	}
}

func (f *fakeShopRepo) addProduct(p *models.Product) *models.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.products[p.ID.String()] = p
	return p
}

func (f *fakeShopRepo) addCartItem(userID string, product *models.Product, quantity int) {
	uid := uuid.MustParse(userID)
	f.carts[userID] = append(f.carts[userID], models.CartItem{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    uid,
		ProductID: product.ID,
		Quantity:  quantity,
		Product:   product,
	})
}

func (f *fakeShopRepo) FindProductByID(_ *gorm.DB, id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repositories.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeShopRepo) FindProducts(_ *gorm.DB, category string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if category == "" || (p.Category != nil && *p.Category == category) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeShopRepo) CreateProduct(_ *gorm.DB, product *models.Product) error {
	f.addProduct(product)
	return nil
}

func (f *fakeShopRepo) UpdateProduct(_ *gorm.DB, product *models.Product) error {
	f.products[product.ID.String()] = product
	return nil
}

func (f *fakeShopRepo) DeleteProduct(_ *gorm.DB, id string) error {
	if _, ok := f.products[id]; !ok {
		return repositories.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeShopRepo) FindCart(_ *gorm.DB, userID string) ([]models.CartItem, error) {
	return f.carts[userID], nil
}

func (f *fakeShopRepo) FindCartItem(_ *gorm.DB, userID, itemID string) (*models.CartItem, error) {
	for i := range f.carts[userID] {
		if f.carts[userID][i].ID.String() == itemID {
			return &f.carts[userID][i], nil
		}
	}
	return nil, repositories.ErrCartItemNotFound
}

func (f *fakeShopRepo) UpsertCartItem(_ *gorm.DB, userID, productID string, quantity int) (*models.CartItem, error) {
	for i := range f.carts[userID] {
		if f.carts[userID][i].ProductID.String() == productID {
			f.carts[userID][i].Quantity += quantity
			return &f.carts[userID][i], nil
		}
	}
	f.addCartItem(userID, f.products[productID], quantity)
	items := f.carts[userID]
	return &items[len(items)-1], nil
}

func (f *fakeShopRepo) UpdateCartItemQuantity(_ *gorm.DB, userID, itemID string, quantity int) error {
	for i := range f.carts[userID] {
		if f.carts[userID][i].ID.String() == itemID {
			f.carts[userID][i].Quantity = quantity
			return nil
		}
	}
	return repositories.ErrCartItemNotFound
}

func (f *fakeShopRepo) RemoveCartItem(_ *gorm.DB, userID, itemID string) error {
	items := f.carts[userID]
	for i := range items {
		if items[i].ID.String() == itemID {
			f.carts[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return repositories.ErrCartItemNotFound
}

func (f *fakeShopRepo) ClearCart(_ *gorm.DB, userID string) error {
	delete(f.carts, userID)
	return nil
}

// fakeOrderRepo mimics Settle's guarded decrement against the shop fake's
// product map.
type fakeOrderRepo struct {
	shop   *fakeShopRepo
	orders []*models.Order
	used   map[string]int // userID -> units purchased this month
}

func newFakeOrderRepo(shop *fakeShopRepo) *fakeOrderRepo {
	return &fakeOrderRepo{shop: shop, used: map[string]int{}}
}

func (f *fakeOrderRepo) SumItemQuantityInWindow(_ *gorm.DB, userID string, _, _ time.Time) (int, error) {
	return f.used[userID], nil
}

func (f *fakeOrderRepo) Settle(_ *gorm.DB, userID string, build func(tx *gorm.DB) (*models.Order, []models.OrderItem, error)) (*models.Order, error) {
	order, items, err := build(nil)
	if err != nil {
		return nil, err
	}
	for i := range items {
		product, ok := f.shop.products[items[i].ProductID.String()]
		if !ok || product.Stock < items[i].Quantity {
			name := items[i].ProductID.String()
			if ok {
				name = product.Name
			}
			return nil, &repositories.InsufficientStockError{ProductName: name}
		}
	}
	for i := range items {
		f.shop.products[items[i].ProductID.String()].Stock -= items[i].Quantity
		f.used[userID] += items[i].Quantity
	}
	order.ID = uuid.New()
	for i := range items {
		items[i].OrderID = order.ID
	}
	order.Items = items
	f.orders = append(f.orders, order)
	delete(f.shop.carts, userID)
	return order, nil
}

func (f *fakeOrderRepo) FindByID(_ *gorm.DB, id string) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID.String() == id {
			return o, nil
		}
	}
	return nil, repositories.ErrOrderNotFound
}

func (f *fakeOrderRepo) FindByUser(_ *gorm.DB, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID.String() == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindAll(_ *gorm.DB) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

type fakeEmailProvider struct {
	sent []*email.Email
}

func (f *fakeEmailProvider) Send(msg *email.Email) error {
	f.sent = append(f.sent, msg)
	return nil
}
