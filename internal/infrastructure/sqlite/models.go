package sqlite

import (
	"time"

	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Filas gorm. El dominio no conoce estas structs; cada repo mapea a entity.

type productRow struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string          `gorm:"column:name"`
	Quantity  int             `gorm:"column:quantity"`
	SellPrice decimal.Decimal `gorm:"column:sell_price"`
	CostPrice decimal.Decimal `gorm:"column:cost_price"`
	Category  string          `gorm:"column:category"`
	Supplier  string          `gorm:"column:supplier"`
}

func (productRow) TableName() string { return "products" }

func productToRow(p *entity.Product) productRow {
	return productRow{
		ID: p.ID, Name: p.Name, Quantity: p.Quantity,
		SellPrice: p.SellPrice, CostPrice: p.CostPrice,
		Category: p.Category, Supplier: p.Supplier,
	}
}

func (r productRow) toEntity() *entity.Product {
	return &entity.Product{
		ID: r.ID, Name: r.Name, Quantity: r.Quantity,
		SellPrice: r.SellPrice.Round(2), CostPrice: r.CostPrice.Round(2),
		Category: r.Category, Supplier: r.Supplier,
	}
}

type userRow struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string `gorm:"column:name"`
	Login        string `gorm:"column:login"`
	PasswordHash string `gorm:"column:password_hash"`
	Role         string `gorm:"column:role"`
}

func (userRow) TableName() string { return "users" }

func (r userRow) toEntity() *entity.User {
	return &entity.User{ID: r.ID, Name: r.Name, Login: r.Login, PasswordHash: r.PasswordHash, Role: r.Role}
}

type clientRow struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name    string `gorm:"column:name"`
	Phone   string `gorm:"column:phone"`
	Email   string `gorm:"column:email"`
	CPFCNPJ string `gorm:"column:cpf_cnpj"`
	Address string `gorm:"column:address"`
}

func (clientRow) TableName() string { return "clients" }

func clientToRow(c *entity.Client) clientRow {
	return clientRow{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email, CPFCNPJ: c.CPFCNPJ, Address: c.Address}
}

func (r clientRow) toEntity() *entity.Client {
	return &entity.Client{ID: r.ID, Name: r.Name, Phone: r.Phone, Email: r.Email, CPFCNPJ: r.CPFCNPJ, Address: r.Address}
}

type saleRow struct {
	ID             int64           `gorm:"column:id;primaryKey;autoIncrement"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UserID         int64           `gorm:"column:user_id"`
	ClientID       *int64          `gorm:"column:client_id"`
	Total          decimal.Decimal `gorm:"column:total"`
	Freight        decimal.Decimal `gorm:"column:freight"`
	DeliveryStatus string          `gorm:"column:delivery_status"`
	PaymentMethod  string          `gorm:"column:payment_method"`
	AmountPaid     decimal.Decimal `gorm:"column:amount_paid"`
	ChangeDue      decimal.Decimal `gorm:"column:change_due"`
	VehicleID      *int64          `gorm:"column:vehicle_id"`
}

func (saleRow) TableName() string { return "sales" }

func (r saleRow) toEntity() *entity.Sale {
	return &entity.Sale{
		ID: r.ID, CreatedAt: r.CreatedAt, UserID: r.UserID, ClientID: r.ClientID,
		Total: r.Total.Round(2), Freight: r.Freight.Round(2),
		DeliveryStatus: r.DeliveryStatus, PaymentMethod: r.PaymentMethod,
		AmountPaid: r.AmountPaid.Round(2), ChangeDue: r.ChangeDue.Round(2),
		VehicleID: r.VehicleID,
	}
}

type saleItemRow struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement"`
	SaleID    int64           `gorm:"column:sale_id"`
	ProductID int64           `gorm:"column:product_id"`
	Quantity  int             `gorm:"column:quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price"`
}

func (saleItemRow) TableName() string { return "sale_items" }

type ledgerRow struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	Description string          `gorm:"column:description"`
	Amount      decimal.Decimal `gorm:"column:amount"`
	Direction   string          `gorm:"column:direction"`
	CategoryID  *int64          `gorm:"column:category_id"`
	SaleID      *int64          `gorm:"column:sale_id"`
	UserID      *int64          `gorm:"column:user_id"`
}

func (ledgerRow) TableName() string { return "ledger_entries" }

type ledgerCategoryRow struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name"`
	Kind string `gorm:"column:kind"`
}

func (ledgerCategoryRow) TableName() string { return "ledger_categories" }

type vehicleRow struct {
	ID         int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Model      string          `gorm:"column:model"`
	Plate      string          `gorm:"column:plate"`
	CapacityKg decimal.Decimal `gorm:"column:capacity_kg"`
	Status     string          `gorm:"column:status"`
}

func (vehicleRow) TableName() string { return "vehicles" }

func (r vehicleRow) toEntity() *entity.Vehicle {
	return &entity.Vehicle{ID: r.ID, Model: r.Model, Plate: r.Plate, CapacityKg: r.CapacityKg, Status: r.Status}
}

type maintenanceRow struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	VehicleID   int64           `gorm:"column:vehicle_id"`
	Date        time.Time       `gorm:"column:date"`
	Description string          `gorm:"column:description"`
	Cost        decimal.Decimal `gorm:"column:cost"`
}

func (maintenanceRow) TableName() string { return "vehicle_maintenance" }

type companyRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Document  string    `gorm:"column:document"`
	Address   string    `gorm:"column:address"`
	Phone     string    `gorm:"column:phone"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (companyRow) TableName() string { return "company_settings" }
