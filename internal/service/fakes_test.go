package service

import (
	"sort"
	"time"

	"go-depo-catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memStore is a shared in-memory catalog used by the fake repositories. It
// mirrors the store's semantics that matter to the services: unique product
// slugs, cascade deletes, link clearing.
type memStore struct {
	vendors       map[uuid.UUID]*model.Vendor
	categories    map[uuid.UUID]*model.Category
	subCategories map[uuid.UUID]*model.SubCategory
	products      map[uuid.UUID]*model.Product
	options       map[uuid.UUID][]model.ProductPriceOption // keyed by product id
	currencies    map[uuid.UUID]*model.Currency
	units         map[uuid.UUID]*model.UnitType
	users         map[uuid.UUID]*model.User
	clock         time.Time
}

func newMemStore() *memStore {
	return &memStore{
		vendors:       make(map[uuid.UUID]*model.Vendor),
		categories:    make(map[uuid.UUID]*model.Category),
		subCategories: make(map[uuid.UUID]*model.SubCategory),
		products:      make(map[uuid.UUID]*model.Product),
		options:       make(map[uuid.UUID][]model.ProductPriceOption),
		currencies:    make(map[uuid.UUID]*model.Currency),
		units:         make(map[uuid.UUID]*model.UnitType),
		users:         make(map[uuid.UUID]*model.User),
		clock:         time.Now(),
	}
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memStore) addVendor(name string) *model.Vendor {
	v := &model.Vendor{Name: name, VendorSlug: name, Status: model.VendorActive}
	v.ID = uuid.New()
	v.CreatedAt = s.tick()
	s.vendors[v.ID] = v
	return v
}

func (s *memStore) addCategory(nameEn string) *model.Category {
	c := &model.Category{NameEn: nameEn, NameKm: nameEn, NameZh: nameEn, Slug: nameEn}
	c.ID = uuid.New()
	c.CreatedAt = s.tick()
	s.categories[c.ID] = c
	return c
}

func (s *memStore) addSubCategory(category *model.Category, nameEn string) *model.SubCategory {
	sc := &model.SubCategory{NameEn: nameEn, Slug: nameEn, CategoryID: category.ID}
	sc.ID = uuid.New()
	sc.CreatedAt = s.tick()
	s.subCategories[sc.ID] = sc
	return sc
}

func (s *memStore) addCurrency(code string, status model.LookupStatus) *model.Currency {
	c := &model.Currency{Code: code, Status: status}
	c.ID = uuid.New()
	s.currencies[c.ID] = c
	return c
}

func (s *memStore) addUnit(name string, status model.LookupStatus) *model.UnitType {
	u := &model.UnitType{Name: name, Status: status}
	u.ID = uuid.New()
	s.units[u.ID] = u
	return u
}

func copyProduct(p *model.Product) *model.Product {
	cp := *p
	cp.Gallery = append(model.Gallery(nil), p.Gallery...)
	cp.PriceOptions = append([]model.ProductPriceOption(nil), p.PriceOptions...)
	return &cp
}

// ---- ProductRepository ----

type fakeProductRepo struct {
	store *memStore
}

func (r *fakeProductRepo) FindAllScoped(vendorID *uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	for _, p := range r.store.products {
		if vendorID != nil && p.VendorID != *vendorID {
			continue
		}
		cp := copyProduct(p)
		cp.PriceOptions = append([]model.ProductPriceOption(nil), r.store.options[p.ID]...)
		products = append(products, *cp)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	p, okFound := r.store.products[id]
	if !okFound {
		return nil, gorm.ErrRecordNotFound
	}
	cp := copyProduct(p)
	cp.PriceOptions = append([]model.ProductPriceOption(nil), r.store.options[id]...)
	return cp, nil
}

func (r *fakeProductRepo) FindRelated(vendorID uuid.UUID, excludeID uuid.UUID, limit int) ([]model.Product, error) {
	var related []model.Product
	for _, p := range r.store.products {
		if p.VendorID != vendorID || p.ID == excludeID || p.Status != model.ProductPublished {
			continue
		}
		related = append(related, *copyProduct(p))
	}
	sort.Slice(related, func(i, j int) bool {
		return related[i].CreatedAt.After(related[j].CreatedAt)
	})
	if len(related) > limit {
		related = related[:limit]
	}
	return related, nil
}

func (r *fakeProductRepo) SlugExists(slug string) (bool, error) {
	for _, p := range r.store.products {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) CreateWithOptions(product *model.Product, options []model.ProductPriceOption) error {
	// The unique index stays authoritative even past the registry pre-check.
	if exists, _ := r.SlugExists(product.Slug); exists {
		return gorm.ErrDuplicatedKey
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = r.store.tick()
	for i := range options {
		options[i].ID = uuid.New()
		options[i].ProductID = product.ID
	}
	r.store.products[product.ID] = copyProduct(product)
	r.store.options[product.ID] = append([]model.ProductPriceOption(nil), options...)
	product.PriceOptions = options
	return nil
}

func (r *fakeProductRepo) UpdateWithOptions(product *model.Product, options []model.ProductPriceOption) error {
	if _, okFound := r.store.products[product.ID]; !okFound {
		return gorm.ErrRecordNotFound
	}
	for _, p := range r.store.products {
		if p.Slug == product.Slug && p.ID != product.ID {
			return gorm.ErrDuplicatedKey
		}
	}
	for i := range options {
		options[i].ID = uuid.New()
		options[i].ProductID = product.ID
	}
	r.store.products[product.ID] = copyProduct(product)
	r.store.options[product.ID] = append([]model.ProductPriceOption(nil), options...)
	product.PriceOptions = options
	return nil
}

func (r *fakeProductRepo) DeleteCascade(id uuid.UUID) error {
	delete(r.store.options, id)
	delete(r.store.products, id)
	return nil
}

// ---- VendorRepository ----

type fakeVendorRepo struct {
	store *memStore
}

func (r *fakeVendorRepo) Create(vendor *model.Vendor) error {
	for _, v := range r.store.vendors {
		if v.VendorSlug == vendor.VendorSlug {
			return gorm.ErrDuplicatedKey
		}
	}
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	vendor.CreatedAt = r.store.tick()
	r.store.vendors[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) FindAll() ([]model.Vendor, error) {
	var vendors []model.Vendor
	for _, v := range r.store.vendors {
		vendors = append(vendors, *v)
	}
	sort.Slice(vendors, func(i, j int) bool {
		return vendors[i].CreatedAt.Before(vendors[j].CreatedAt)
	})
	return vendors, nil
}

func (r *fakeVendorRepo) FindByID(id uuid.UUID) (*model.Vendor, error) {
	v, okFound := r.store.vendors[id]
	if !okFound {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVendorRepo) FindBySlug(slug string) (*model.Vendor, error) {
	for _, v := range r.store.vendors {
		if v.VendorSlug == slug {
			cp := *v
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeVendorRepo) FindByOwner(userID uuid.UUID) (*model.Vendor, error) {
	for _, v := range r.store.vendors {
		if v.OwnerUserID != nil && *v.OwnerUserID == userID {
			cp := *v
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeVendorRepo) FallbackVendor() (*model.Vendor, error) {
	vendors, _ := r.FindAll()
	if len(vendors) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &vendors[0], nil
}

func (r *fakeVendorRepo) Update(vendor *model.Vendor) error {
	if _, okFound := r.store.vendors[vendor.ID]; !okFound {
		return gorm.ErrRecordNotFound
	}
	r.store.vendors[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) DeleteCascade(id uuid.UUID) error {
	for pid, p := range r.store.products {
		if p.VendorID == id {
			delete(r.store.options, pid)
			delete(r.store.products, pid)
		}
	}
	delete(r.store.vendors, id)
	return nil
}

// ---- CategoryRepository ----

type fakeCategoryRepo struct {
	store *memStore
}

func (r *fakeCategoryRepo) Create(category *model.Category) error {
	for _, c := range r.store.categories {
		if c.Slug == category.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	category.CreatedAt = r.store.tick()
	r.store.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	for _, c := range r.store.categories {
		categories = append(categories, *c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].SortOrder != categories[j].SortOrder {
			return categories[i].SortOrder < categories[j].SortOrder
		}
		return categories[i].CreatedAt.Before(categories[j].CreatedAt)
	})
	return categories, nil
}

func (r *fakeCategoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	c, okFound := r.store.categories[id]
	if !okFound {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) Update(category *model.Category) error {
	if _, okFound := r.store.categories[category.ID]; !okFound {
		return gorm.ErrRecordNotFound
	}
	r.store.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) DeleteCascade(id uuid.UUID) error {
	for scID, sc := range r.store.subCategories {
		if sc.CategoryID != id {
			continue
		}
		for _, p := range r.store.products {
			if p.SubCategoryID != nil && *p.SubCategoryID == scID {
				p.SubCategoryID = nil
			}
		}
		delete(r.store.subCategories, scID)
	}
	for _, p := range r.store.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			p.CategoryID = nil
		}
	}
	delete(r.store.categories, id)
	return nil
}

// ---- SubCategoryRepository ----

type fakeSubCategoryRepo struct {
	store *memStore
}

func (r *fakeSubCategoryRepo) Create(sub *model.SubCategory) error {
	for _, sc := range r.store.subCategories {
		if sc.Slug == sub.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	sub.CreatedAt = r.store.tick()
	r.store.subCategories[sub.ID] = sub
	return nil
}

func (r *fakeSubCategoryRepo) FindAll() ([]model.SubCategory, error) {
	var subs []model.SubCategory
	for _, sc := range r.store.subCategories {
		subs = append(subs, *sc)
	}
	return subs, nil
}

func (r *fakeSubCategoryRepo) FindByID(id uuid.UUID) (*model.SubCategory, error) {
	sc, okFound := r.store.subCategories[id]
	if !okFound {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *sc
	return &cp, nil
}

func (r *fakeSubCategoryRepo) FindByCategory(categoryID uuid.UUID) ([]model.SubCategory, error) {
	var subs []model.SubCategory
	for _, sc := range r.store.subCategories {
		if sc.CategoryID == categoryID {
			subs = append(subs, *sc)
		}
	}
	return subs, nil
}

func (r *fakeSubCategoryRepo) Update(sub *model.SubCategory) error {
	if _, okFound := r.store.subCategories[sub.ID]; !okFound {
		return gorm.ErrRecordNotFound
	}
	r.store.subCategories[sub.ID] = sub
	return nil
}

func (r *fakeSubCategoryRepo) DeleteCascade(id uuid.UUID) error {
	for _, p := range r.store.products {
		if p.SubCategoryID != nil && *p.SubCategoryID == id {
			p.SubCategoryID = nil
		}
	}
	delete(r.store.subCategories, id)
	return nil
}

// ---- Lookup repositories ----

type fakeCurrencyRepo struct {
	store *memStore
}

func (r *fakeCurrencyRepo) Create(currency *model.Currency) error {
	if currency.ID == uuid.Nil {
		currency.ID = uuid.New()
	}
	r.store.currencies[currency.ID] = currency
	return nil
}

func (r *fakeCurrencyRepo) FindAll() ([]model.Currency, error) {
	var currencies []model.Currency
	for _, c := range r.store.currencies {
		currencies = append(currencies, *c)
	}
	return currencies, nil
}

func (r *fakeCurrencyRepo) FindByID(id uuid.UUID) (*model.Currency, error) {
	c, okFound := r.store.currencies[id]
	if !okFound {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCurrencyRepo) Update(currency *model.Currency) error {
	r.store.currencies[currency.ID] = currency
	return nil
}

func (r *fakeCurrencyRepo) Delete(id uuid.UUID) error {
	delete(r.store.currencies, id)
	return nil
}

func (r *fakeCurrencyRepo) CountRefs(id uuid.UUID) (int64, error) {
	var count int64
	for _, opts := range r.store.options {
		for _, opt := range opts {
			if opt.CurrencyID == id {
				count++
			}
		}
	}
	return count, nil
}

type fakeUnitTypeRepo struct {
	store *memStore
}

func (r *fakeUnitTypeRepo) Create(unit *model.UnitType) error {
	if unit.ID == uuid.Nil {
		unit.ID = uuid.New()
	}
	r.store.units[unit.ID] = unit
	return nil
}

func (r *fakeUnitTypeRepo) FindAll() ([]model.UnitType, error) {
	var units []model.UnitType
	for _, u := range r.store.units {
		units = append(units, *u)
	}
	return units, nil
}

func (r *fakeUnitTypeRepo) FindByID(id uuid.UUID) (*model.UnitType, error) {
	u, okFound := r.store.units[id]
	if !okFound {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUnitTypeRepo) Update(unit *model.UnitType) error {
	r.store.units[unit.ID] = unit
	return nil
}

func (r *fakeUnitTypeRepo) Delete(id uuid.UUID) error {
	delete(r.store.units, id)
	return nil
}

func (r *fakeUnitTypeRepo) CountRefs(id uuid.UUID) (int64, error) {
	var count int64
	for _, opts := range r.store.options {
		for _, opt := range opts {
			if opt.UnitTypeID == id {
				count++
			}
		}
	}
	return count, nil
}

// ---- UserRepository ----

type fakeUserRepo struct {
	store *memStore
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.store.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	u, okFound := r.store.users[id]
	if !okFound {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Create(user *model.User) error {
	for _, u := range r.store.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.store.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	r.store.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateTokenVersion(userID uuid.UUID, version string) error {
	u, okFound := r.store.users[userID]
	if !okFound {
		return gorm.ErrRecordNotFound
	}
	u.TokenVersion = version
	return nil
}

func (r *fakeUserRepo) LinkVendor(userID uuid.UUID, vendorID uuid.UUID) error {
	u, okFound := r.store.users[userID]
	if !okFound {
		return gorm.ErrRecordNotFound
	}
	u.VendorID = &vendorID
	return nil
}
