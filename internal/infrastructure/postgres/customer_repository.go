package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo listas de clientes por ejecutivo (tablas sa_* del warehouse).
// contactnumber se lee como texto porque algunas fuentes lo cargan numérico.
type CustomerRepo struct {
	db *DB
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(db *DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// NudgeZone clientes sin pedidos recientes.
func (r *CustomerRepo) NudgeZone(ctx context.Context, employeeID string) ([]entity.NudgeCustomer, error) {
	const query = `
		SELECT customer_id, COALESCE(customername, ''), COALESCE(contactnumber::text, ''), last_order
		FROM sa_home_target_customers
		WHERE employee_id = $1
		ORDER BY customer_id`

	var list []entity.NudgeCustomer
	err := r.db.WithConn(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, employeeID)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var c entity.NudgeCustomer
			if err := rows.Scan(&c.CustomerID, &c.Name, &c.ContactNumber, &c.LastOrderDays); err != nil {
				return fmt.Errorf("scan nudge customer: %w", err)
			}
			list = append(list, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list nudge customers: %w", err)
	}
	return list, nil
}

// SoClose clientes del funnel de la app.
func (r *CustomerRepo) SoClose(ctx context.Context, employeeID string) ([]entity.FunnelCustomer, error) {
	const query = `
		SELECT customer_id, COALESCE(customername, ''), COALESCE(contactnumber::text, ''), last_opened::float8
		FROM sa_home_app_funnel_customers
		WHERE employee_id = $1
		ORDER BY customer_id`

	var list []entity.FunnelCustomer
	err := r.db.WithConn(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, employeeID)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var c entity.FunnelCustomer
			if err := rows.Scan(&c.CustomerID, &c.Name, &c.ContactNumber, &c.LastOpenedHours); err != nil {
				return fmt.Errorf("scan funnel customer: %w", err)
			}
			list = append(list, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list funnel customers: %w", err)
	}
	return list, nil
}

// TargetPage filas cliente × SKU de la página de targets.
func (r *CustomerRepo) TargetPage(ctx context.Context, employeeID, layer, metric string) ([]entity.TargetPageCustomer, error) {
	query := `
		SELECT customer_id, COALESCE(customername, ''), COALESCE(contactnumber::text, ''),
		       COALESCE(skuid::text, ''), COALESCE(sku, '')
		FROM sa_customer_page_customers
		WHERE employee_id = $1 AND layer = $2`
	args := []any{employeeID, layer}
	if metric != "" {
		query += ` AND metric = $3`
		args = append(args, metric)
	}
	query += ` ORDER BY customer_id`

	var list []entity.TargetPageCustomer
	err := r.db.WithConn(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var c entity.TargetPageCustomer
			if err := rows.Scan(&c.CustomerID, &c.Name, &c.ContactNumber, &c.SKUID, &c.SKUName); err != nil {
				return fmt.Errorf("scan target customer: %w", err)
			}
			list = append(list, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list target customers: %w", err)
	}
	return list, nil
}

// Base registro completo con filtros opcionales; contact es coincidencia parcial.
func (r *CustomerRepo) Base(ctx context.Context, employeeID string, f entity.BaseCustomerFilter) ([]entity.BaseCustomer, error) {
	query, args := baseCustomersQuery(employeeID, f)

	var list []entity.BaseCustomer
	err := r.db.WithConn(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var c entity.BaseCustomer
			if err := rows.Scan(
				&c.CustomerID, &c.Name, &c.ContactNumber,
				&c.CustomerType, &c.CustomerNature, &c.Cluster,
				&c.LastOrderDate, &c.Locality, &c.Facility,
				&c.SubscriptionEndDate, &c.SubscriptionAmount,
			); err != nil {
				return fmt.Errorf("scan base customer: %w", err)
			}
			list = append(list, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list base customers: %w", err)
	}
	return list, nil
}

// baseCustomersQuery arma el SELECT del registro. contact se busca literal: % y _ no actúan como comodines.
func baseCustomersQuery(employeeID string, f entity.BaseCustomerFilter) (string, []any) {
	query := `
		SELECT customer_id, COALESCE(customername, ''), COALESCE(contactnumber::text, ''),
		       COALESCE(customer_type, ''), COALESCE(customer_nature, ''), COALESCE(cluster, ''),
		       last_order_date, COALESCE(locality, ''), COALESCE(facility, ''),
		       subscription_end_date, subscription_amount
		FROM sa_base_customers
		WHERE employee_id = $1`
	args := []any{employeeID}
	if f.CustomerID != "" {
		args = append(args, f.CustomerID)
		query += fmt.Sprintf(` AND customer_id = $%d`, len(args))
	}
	if f.Contact != "" {
		args = append(args, likeContains(f.Contact))
		query += fmt.Sprintf(` AND contactnumber::text LIKE $%d ESCAPE '\'`, len(args))
	}
	query += ` ORDER BY customer_id`
	return query, args
}
