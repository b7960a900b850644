package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre SQLite.
type SaleRepo struct {
	db *gorm.DB
}

// NewSaleRepository construye el adaptador. Pasar la conexión o la tx.
func NewSaleRepository(db *gorm.DB) *SaleRepo {
	return &SaleRepo{db: db}
}

// CreateHeader inserta la cabecera y asigna sale.ID.
func (r *SaleRepo) CreateHeader(ctx context.Context, sale *entity.Sale) error {
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}
	row := saleRow{
		CreatedAt:      sale.CreatedAt,
		UserID:         sale.UserID,
		ClientID:       sale.ClientID,
		Total:          sale.Total,
		Freight:        sale.Freight,
		DeliveryStatus: sale.DeliveryStatus,
		PaymentMethod:  sale.PaymentMethod,
		AmountPaid:     sale.AmountPaid,
		ChangeDue:      sale.ChangeDue,
		VehicleID:      sale.VehicleID,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if e := translate(err); e != err {
			return fmt.Errorf("insert sale: %w", e)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	sale.ID = row.ID
	return nil
}

// CreateItem inserta una línea de venta.
func (r *SaleRepo) CreateItem(ctx context.Context, item *entity.SaleItem) error {
	row := saleItemRow{SaleID: item.SaleID, ProductID: item.ProductID, Quantity: item.Quantity, UnitPrice: item.UnitPrice}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if e := translate(err); e != err {
			return fmt.Errorf("insert sale item: %w", e)
		}
		return fmt.Errorf("insert sale item: %w", err)
	}
	item.ID = row.ID
	return nil
}

// GetByID (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var row saleRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return row.toEntity(), nil
}

// saleDetailRow columnas planas: Scan no llena structs embebidos no exportados.
type saleDetailRow struct {
	ID             int64           `gorm:"column:id"`
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
	SellerName     string          `gorm:"column:seller_name"`
	ClientName     string          `gorm:"column:client_name"`
	ClientDoc      string          `gorm:"column:client_doc"`
	ClientAddress  string          `gorm:"column:client_address"`
}

// GetDetail venta con vendedor, cliente y líneas (comprobante).
func (r *SaleRepo) GetDetail(ctx context.Context, id int64) (*entity.SaleDetail, error) {
	var rows []saleDetailRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.id, s.created_at, s.user_id, s.client_id, s.total, s.freight, s.delivery_status,
		       s.payment_method, s.amount_paid, s.change_due, s.vehicle_id,
		       COALESCE(u.name, '') AS seller_name,
		       COALESCE(c.name, 'Consumidor Final') AS client_name,
		       COALESCE(c.cpf_cnpj, '') AS client_doc,
		       COALESCE(c.address, '') AS client_address
		FROM sales s
		LEFT JOIN users u ON u.id = s.user_id
		LEFT JOIN clients c ON c.id = s.client_id
		WHERE s.id = ?`, id).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("get sale detail: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	lines, err := r.Items(ctx, id)
	if err != nil {
		return nil, err
	}
	d := rows[0]
	return &entity.SaleDetail{
		Sale: *saleRow{
			ID: d.ID, CreatedAt: d.CreatedAt, UserID: d.UserID, ClientID: d.ClientID,
			Total: d.Total, Freight: d.Freight, DeliveryStatus: d.DeliveryStatus,
			PaymentMethod: d.PaymentMethod, AmountPaid: d.AmountPaid, ChangeDue: d.ChangeDue,
			VehicleID: d.VehicleID,
		}.toEntity(),
		SellerName:    d.SellerName,
		ClientName:    d.ClientName,
		ClientDoc:     d.ClientDoc,
		ClientAddress: d.ClientAddress,
		Lines:         lines,
	}, nil
}

type saleSummaryRow struct {
	ID             int64           `gorm:"column:id"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	SellerName     string          `gorm:"column:seller_name"`
	ClientName     string          `gorm:"column:client_name"`
	Total          decimal.Decimal `gorm:"column:total"`
	Freight        decimal.Decimal `gorm:"column:freight"`
	PaymentMethod  string          `gorm:"column:payment_method"`
	DeliveryStatus string          `gorm:"column:delivery_status"`
}

// List historial de ventas, más recientes primero.
func (r *SaleRepo) List(ctx context.Context) ([]entity.SaleSummary, error) {
	var rows []saleSummaryRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.id, s.created_at, COALESCE(u.name, '') AS seller_name,
		       COALESCE(c.name, 'Consumidor Final') AS client_name,
		       s.total, s.freight, s.payment_method, s.delivery_status
		FROM sales s
		LEFT JOIN users u ON u.id = s.user_id
		LEFT JOIN clients c ON c.id = s.client_id
		ORDER BY s.id DESC`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	out := make([]entity.SaleSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.SaleSummary{
			ID: row.ID, CreatedAt: row.CreatedAt, SellerName: row.SellerName, ClientName: row.ClientName,
			Total: row.Total.Round(2), Freight: row.Freight.Round(2),
			PaymentMethod: row.PaymentMethod, DeliveryStatus: row.DeliveryStatus,
		})
	}
	return out, nil
}

type saleLineRow struct {
	ProductID   int64           `gorm:"column:product_id"`
	ProductName string          `gorm:"column:product_name"`
	Quantity    int             `gorm:"column:quantity"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price"`
}

// Items líneas de una venta con el nombre actual del producto.
func (r *SaleRepo) Items(ctx context.Context, saleID int64) ([]entity.SaleLine, error) {
	var rows []saleLineRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT si.product_id, COALESCE(p.name, 'Produto ' || si.product_id) AS product_name,
		       si.quantity, si.unit_price
		FROM sale_items si
		LEFT JOIN products p ON p.id = si.product_id
		WHERE si.sale_id = ?
		ORDER BY si.id`, saleID).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	out := make([]entity.SaleLine, 0, len(rows))
	for _, row := range rows {
		price := row.UnitPrice.Round(2)
		out = append(out, entity.SaleLine{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			UnitPrice:   price,
			Subtotal:    price.Mul(decimal.NewFromInt(int64(row.Quantity))),
		})
	}
	return out, nil
}

// UpdateDelivery cambia el estado solo si el actual es fromStatus; devuelve filas afectadas.
func (r *SaleRepo) UpdateDelivery(ctx context.Context, saleID int64, fromStatus, toStatus string, vehicleID *int64) (int64, error) {
	updates := map[string]interface{}{"delivery_status": toStatus}
	if vehicleID != nil {
		updates["vehicle_id"] = *vehicleID
	}
	res := r.db.WithContext(ctx).Model(&saleRow{}).
		Where("id = ? AND delivery_status = ?", saleID, fromStatus).
		Updates(updates)
	if res.Error != nil {
		return 0, fmt.Errorf("update delivery: %w", translate(res.Error))
	}
	return res.RowsAffected, nil
}

type pendingRow struct {
	SaleID     int64           `gorm:"column:sale_id"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	ClientName string          `gorm:"column:client_name"`
	Address    string          `gorm:"column:address"`
	Freight    decimal.Decimal `gorm:"column:freight"`
	Total      decimal.Decimal `gorm:"column:total"`
}

// ListPendingDeliveries ventas pendientes con flete > 0, más antiguas primero.
func (r *SaleRepo) ListPendingDeliveries(ctx context.Context) ([]entity.PendingDelivery, error) {
	var rows []pendingRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.id AS sale_id, s.created_at, COALESCE(c.name, 'Consumidor Final') AS client_name,
		       COALESCE(c.address, '') AS address, s.freight, s.total
		FROM sales s
		LEFT JOIN clients c ON c.id = s.client_id
		WHERE s.delivery_status = ? AND s.freight > 0
		ORDER BY s.id`, entity.DeliveryPending).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list pending deliveries: %w", err)
	}
	out := make([]entity.PendingDelivery, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.PendingDelivery{
			SaleID: row.SaleID, CreatedAt: row.CreatedAt, ClientName: row.ClientName,
			Address: row.Address, Freight: row.Freight.Round(2), Total: row.Total.Round(2),
		})
	}
	return out, nil
}

// Count cantidad de ventas registradas.
func (r *SaleRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&saleRow{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}
