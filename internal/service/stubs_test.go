package service

import (
	"context"
	"time"

	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil so transactional services run
// their closures directly.

type memProducts struct {
	items  map[uint]*model.Product
	nextID uint
}

func newMemProducts() *memProducts {
	return &memProducts{items: map[uint]*model.Product{}}
}

func (m *memProducts) add(p model.Product) *model.Product {
	m.nextID++
	p.ID = m.nextID
	m.items[p.ID] = &p
	return &p
}

func (m *memProducts) DB() *gorm.DB { return nil }

func (m *memProducts) Create(_ context.Context, p *model.Product) error {
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memProducts) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) List(_ context.Context, filter map[string]any, page, perPage int) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range m.items {
		if active, ok := filter["is_active"]; ok && p.IsActive != active.(bool) {
			continue
		}
		if cid, ok := filter["category_id"]; ok && (p.CategoryID == nil || *p.CategoryID != cid.(uint)) {
			continue
		}
		if sid, ok := filter["supplier_id"]; ok && (p.SupplierID == nil || *p.SupplierID != sid.(uint)) {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (m *memProducts) Update(_ context.Context, id uint, fields map[string]any) (*model.Product, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "sku":
			p.SKU = v.(string)
		case "price":
			p.Price = v.(decimal.Decimal)
		case "quantity_in_stock":
			p.QuantityInStock = v.(int)
		case "reorder_level":
			p.ReorderLevel = v.(int)
		case "is_active":
			p.IsActive = v.(bool)
		}
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func (m *memProducts) Exists(_ context.Context, fields map[string]any) (bool, error) {
	n, _ := m.Count(nil, fields)
	return n > 0, nil
}

func (m *memProducts) Count(_ context.Context, _ map[string]any) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memProducts) FindBySKU(_ context.Context, sku string) (*model.Product, error) {
	for _, p := range m.items {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProducts) FindByBarcode(_ context.Context, barcode string) (*model.Product, error) {
	for _, p := range m.items {
		if p.Barcode != nil && *p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProducts) SKUExists(_ context.Context, sku string, excludeID uint) (bool, error) {
	for _, p := range m.items {
		if p.SKU == sku && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memProducts) Search(_ context.Context, _ string, _, _ int) ([]model.Product, int64, error) {
	return nil, 0, nil
}

func (m *memProducts) LowStock(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range m.items {
		if p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProducts) InventoryValue(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range m.items {
		if p.CostPrice != nil {
			total = total.Add(p.CostPrice.Mul(decimal.NewFromInt(int64(p.QuantityInStock))))
		}
	}
	return total, nil
}

func (m *memProducts) FindByIDForUpdate(ctx context.Context, _ *gorm.DB, id uint) (*model.Product, error) {
	return m.FindByID(ctx, id)
}

func (m *memProducts) AdjustStockTx(_ context.Context, _ *gorm.DB, id uint, delta int) error {
	if p, ok := m.items[id]; ok {
		p.QuantityInStock += delta
	}
	return nil
}

var _ repository.ProductRepository = (*memProducts)(nil)

type memSales struct {
	items  map[uint]*model.Sale
	nextID uint
}

func newMemSales() *memSales { return &memSales{items: map[uint]*model.Sale{}} }

func (m *memSales) DB() *gorm.DB { return nil }

func (m *memSales) Create(ctx context.Context, s *model.Sale) error {
	return m.CreateTx(ctx, nil, s)
}

func (m *memSales) CreateTx(_ context.Context, _ *gorm.DB, s *model.Sale) error {
	m.nextID++
	s.ID = m.nextID
	cp := *s
	m.items[s.ID] = &cp
	return nil
}

func (m *memSales) FindByID(_ context.Context, id uint) (*model.Sale, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memSales) List(_ context.Context, _ map[string]any, _, _ int) ([]model.Sale, int64, error) {
	var out []model.Sale
	for _, s := range m.items {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (m *memSales) Update(_ context.Context, _ uint, _ map[string]any) (*model.Sale, error) {
	return nil, nil
}

func (m *memSales) Delete(ctx context.Context, id uint) (bool, error) {
	return m.DeleteTx(ctx, nil, id)
}

func (m *memSales) DeleteTx(_ context.Context, _ *gorm.DB, id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func (m *memSales) Exists(_ context.Context, _ map[string]any) (bool, error) { return false, nil }

func (m *memSales) Count(_ context.Context, _ map[string]any) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memSales) ListFiltered(_ context.Context, f repository.SaleFilter) ([]model.Sale, int64, error) {
	var out []model.Sale
	for _, s := range m.items {
		if f.Start != nil && s.SaleDate.Before(*f.Start) {
			continue
		}
		if f.End != nil && s.SaleDate.After(*f.End) {
			continue
		}
		if f.ProductID != nil && s.ProductID != *f.ProductID {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (m *memSales) SumTotals(_ context.Context, start, end *time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range m.items {
		if start != nil && s.SaleDate.Before(*start) {
			continue
		}
		if end != nil && s.SaleDate.After(*end) {
			continue
		}
		total = total.Add(s.TotalAmount)
	}
	return total, nil
}

var _ repository.SaleRepository = (*memSales)(nil)

type memInventory struct {
	items  map[uint]*model.InventoryTransaction
	nextID uint
}

func newMemInventory() *memInventory {
	return &memInventory{items: map[uint]*model.InventoryTransaction{}}
}

func (m *memInventory) DB() *gorm.DB { return nil }

func (m *memInventory) Create(ctx context.Context, t *model.InventoryTransaction) error {
	return m.CreateTx(ctx, nil, t)
}

func (m *memInventory) CreateTx(_ context.Context, _ *gorm.DB, t *model.InventoryTransaction) error {
	m.nextID++
	t.ID = m.nextID
	cp := *t
	m.items[t.ID] = &cp
	return nil
}

func (m *memInventory) FindByID(_ context.Context, id uint) (*model.InventoryTransaction, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *memInventory) List(_ context.Context, _ map[string]any, _, _ int) ([]model.InventoryTransaction, int64, error) {
	var out []model.InventoryTransaction
	for _, t := range m.items {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (m *memInventory) Update(_ context.Context, _ uint, _ map[string]any) (*model.InventoryTransaction, error) {
	return nil, nil
}

func (m *memInventory) Delete(_ context.Context, _ uint) (bool, error) { return false, nil }

func (m *memInventory) Exists(_ context.Context, _ map[string]any) (bool, error) {
	return false, nil
}

func (m *memInventory) Count(_ context.Context, _ map[string]any) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memInventory) ListByProduct(_ context.Context, productID uint, _, _ int) ([]model.InventoryTransaction, int64, error) {
	var out []model.InventoryTransaction
	for _, t := range m.items {
		if t.ProductID == productID {
			out = append(out, *t)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memInventory) byProduct(productID uint) []model.InventoryTransaction {
	out, _, _ := m.ListByProduct(context.Background(), productID, 1, 100)
	return out
}

var _ repository.InventoryRepository = (*memInventory)(nil)

type memUsers struct {
	items  map[uint]*model.User
	nextID uint
}

func newMemUsers() *memUsers { return &memUsers{items: map[uint]*model.User{}} }

func (m *memUsers) add(u model.User) *model.User {
	m.nextID++
	u.ID = m.nextID
	m.items[u.ID] = &u
	return &u
}

func (m *memUsers) DB() *gorm.DB { return nil }

func (m *memUsers) Create(_ context.Context, u *model.User) error {
	m.nextID++
	u.ID = m.nextID
	cp := *u
	m.items[u.ID] = &cp
	return nil
}

func (m *memUsers) FindByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) List(_ context.Context, _ map[string]any, _, _ int) ([]model.User, int64, error) {
	var out []model.User
	for _, u := range m.items {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (m *memUsers) Update(_ context.Context, id uint, fields map[string]any) (*model.User, error) {
	u, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "role":
			u.Role = v.(string)
		case "is_active":
			u.IsActive = v.(bool)
		}
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func (m *memUsers) Exists(_ context.Context, _ map[string]any) (bool, error) { return false, nil }

func (m *memUsers) Count(_ context.Context, _ map[string]any) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memUsers) FindByIdentityUID(_ context.Context, uid string) (*model.User, error) {
	for _, u := range m.items {
		if u.IdentityUID == uid {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range m.items {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range m.items {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) SetActive(ctx context.Context, id uint, active bool) (*model.User, error) {
	return m.Update(ctx, id, map[string]any{"is_active": active})
}

var _ repository.UserRepository = (*memUsers)(nil)

type memCategories struct {
	items  map[uint]*model.Category
	nextID uint
}

func newMemCategories() *memCategories {
	return &memCategories{items: map[uint]*model.Category{}}
}

func (m *memCategories) add(c model.Category) *model.Category {
	m.nextID++
	c.ID = m.nextID
	m.items[c.ID] = &c
	return &c
}

func (m *memCategories) DB() *gorm.DB { return nil }

func (m *memCategories) Create(_ context.Context, c *model.Category) error {
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.items[c.ID] = &cp
	return nil
}

func (m *memCategories) FindByID(_ context.Context, id uint) (*model.Category, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCategories) List(_ context.Context, _ map[string]any, _, _ int) ([]model.Category, int64, error) {
	var out []model.Category
	for _, c := range m.items {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (m *memCategories) Update(_ context.Context, id uint, fields map[string]any) (*model.Category, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			c.Name = v.(string)
		case "description":
			d := v.(string)
			c.Description = &d
		}
	}
	cp := *c
	return &cp, nil
}

func (m *memCategories) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func (m *memCategories) Exists(_ context.Context, _ map[string]any) (bool, error) {
	return false, nil
}

func (m *memCategories) Count(_ context.Context, _ map[string]any) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memCategories) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range m.items {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCategories) NameExists(_ context.Context, name string, excludeID uint) (bool, error) {
	for _, c := range m.items {
		if c.Name == name && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCategories) Subcategories(_ context.Context, parentID uint) ([]model.Category, error) {
	var out []model.Category
	for _, c := range m.items {
		if c.ParentCategoryID != nil && *c.ParentCategoryID == parentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memCategories) Roots(_ context.Context) ([]model.Category, error) {
	var out []model.Category
	for _, c := range m.items {
		if c.ParentCategoryID == nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

var _ repository.CategoryRepository = (*memCategories)(nil)
