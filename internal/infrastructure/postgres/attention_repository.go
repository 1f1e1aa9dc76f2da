package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/repository"
)

var _ repository.AttentionRepository = (*AttentionRepo)(nil)

// AttentionRepo lecturas de sa_attention_customers.
type AttentionRepo struct {
	db *DB
}

// NewAttentionRepository construye el adaptador.
func NewAttentionRepository(db *DB) *AttentionRepo {
	return &AttentionRepo{db: db}
}

// Metrics métricas distintas con clientes en atención, en orden alfabético.
func (r *AttentionRepo) Metrics(ctx context.Context, employeeID string) ([]string, error) {
	const query = `
		SELECT DISTINCT metric FROM sa_attention_customers
		WHERE employee_id = $1 AND metric IS NOT NULL
		ORDER BY metric`

	var list []string
	err := r.db.WithConn(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, employeeID)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var m string
			if err := rows.Scan(&m); err != nil {
				return fmt.Errorf("scan attention metric: %w", err)
			}
			list = append(list, m)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list attention metrics: %w", err)
	}
	return list, nil
}

// Customers clientes distintos (un registro por customer_id) de la métrica.
func (r *AttentionRepo) Customers(ctx context.Context, employeeID, metric string) ([]entity.AttentionRow, error) {
	query := `
		SELECT DISTINCT ON (customer_id)
		       customer_id, COALESCE(customername, ''), COALESCE(contactnumber::text, ''), COALESCE(metric, '')
		FROM sa_attention_customers
		WHERE employee_id = $1`
	args := []any{employeeID}
	if metric != "" {
		query += ` AND metric = $2`
		args = append(args, metric)
	}
	query += ` ORDER BY customer_id, metric`

	var list []entity.AttentionRow
	err := r.db.WithConn(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var c entity.AttentionRow
			if err := rows.Scan(&c.CustomerID, &c.Name, &c.ContactNumber, &c.Metric); err != nil {
				return fmt.Errorf("scan attention customer: %w", err)
			}
			list = append(list, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list attention customers: %w", err)
	}
	return list, nil
}

// SKUDetails detalle de entrega por SKU de un cliente.
func (r *AttentionRepo) SKUDetails(ctx context.Context, employeeID, customerID, metric string) ([]entity.AttentionRow, error) {
	query := `
		SELECT customer_id, COALESCE(customername, ''), COALESCE(contactnumber::text, ''), COALESCE(metric, ''),
		       COALESCE(skuid::text, ''), COALESCE(sku, ''), date, on_time,
		       order_kg, billed_kg, sale_kg, return_kg, readjustment_kg, COALESCE(shop_reach_time::text, '')
		FROM sa_attention_customers
		WHERE employee_id = $1 AND customer_id = $2`
	args := []any{employeeID, customerID}
	if metric != "" {
		query += ` AND metric = $3`
		args = append(args, metric)
	}
	query += ` ORDER BY date DESC NULLS LAST, skuid`

	var list []entity.AttentionRow
	err := r.db.WithConn(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var a entity.AttentionRow
			if err := rows.Scan(
				&a.CustomerID, &a.Name, &a.ContactNumber, &a.Metric,
				&a.SKUID, &a.SKUName, &a.Date, &a.OnTime,
				&a.OrderKg, &a.BilledKg, &a.SaleKg, &a.ReturnKg, &a.ReadjustmentKg, &a.ShopReachTime,
			); err != nil {
				return fmt.Errorf("scan attention sku: %w", err)
			}
			list = append(list, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list attention skus: %w", err)
	}
	return list, nil
}
