package common

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/Lumos-Labs-HQ/kons-seed/internal/types"
	"github.com/Masterminds/squirrel"
)

const (
	TableUser            = "User"
	TableProduct         = "Product"
	TableTransaction     = "StoreTransaction"
	TableTransactionItem = "TransactionItem"
)

// Tables lists the shop tables in foreign key order.
var Tables = []string{TableUser, TableProduct, TableTransaction, TableTransactionItem}

var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Dialect captures what differs between providers when inserting rows.
type Dialect struct {
	Name        string
	Placeholder squirrel.PlaceholderFormat
	Quote       func(string) string
	// Returning selects INSERT ... RETURNING id over sql.Result.LastInsertId.
	Returning bool
}

type Tx interface {
	InsertProduct(ctx context.Context, p types.ProductRow) (int64, error)
	InsertUser(ctx context.Context, u types.UserRow) (int64, error)
	InsertTransaction(ctx context.Context, t types.TransactionRow) (int64, error)
	InsertTransactionItem(ctx context.Context, item types.TransactionItemRow) (int64, error)
	Commit() error
	Rollback() error
}

// Store implements the provider independent part of the adapters on top of
// database/sql. Adapters embed it once connected.
type Store struct {
	db      *sql.DB
	qb      squirrel.StatementBuilderType
	dialect Dialect
}

func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{
		db:      db,
		qb:      squirrel.StatementBuilder.PlaceholderFormat(dialect.Placeholder),
		dialect: dialect,
	}
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Begin(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &sqlTx{tx: tx, qb: s.qb, dialect: s.dialect}, nil
}

func (s *Store) ListUserIDs(ctx context.Context) ([]int64, error) {
	query, args, err := s.qb.Select(s.dialect.Quote("id")).
		From(s.dialect.Quote(TableUser)).
		OrderBy(s.dialect.Quote("id")).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) ListProducts(ctx context.Context) ([]types.ProductRow, error) {
	q := s.dialect.Quote
	query, args, err := s.qb.Select(q("id"), q("name"), q("price"), q("description"), q("stock"), q("flags")).
		From(q(TableProduct)).
		OrderBy(q("id")).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []types.ProductRow
	for rows.Next() {
		var p types.ProductRow
		var description, flags sql.NullString
		var stock sql.NullInt64
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &description, &stock, &flags); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.Description = description.String
		p.Stock = int(stock.Int64)
		p.Flags = flags.String
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *Store) CountRows(ctx context.Context, table string) (int, error) {
	if !validIdentifier.MatchString(table) {
		return 0, fmt.Errorf("invalid table name: %s", table)
	}

	query, args, err := s.qb.Select("COUNT(*)").From(s.dialect.Quote(table)).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

func (s *Store) ExecScript(ctx context.Context, script string) error {
	for _, stmt := range SplitStatements(script) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute statement %q: %w", stmt, err)
		}
	}
	return nil
}

type sqlTx struct {
	tx      *sql.Tx
	qb      squirrel.StatementBuilderType
	dialect Dialect
}

func (t *sqlTx) InsertProduct(ctx context.Context, p types.ProductRow) (int64, error) {
	return t.insert(ctx, TableProduct,
		[]string{"name", "price", "description", "stock", "flags"},
		p.Name, p.Price, p.Description, p.Stock, p.Flags)
}

func (t *sqlTx) InsertUser(ctx context.Context, u types.UserRow) (int64, error) {
	return t.insert(ctx, TableUser,
		[]string{"name", "email", "google_id", "role", "balance", "on_leaderboard", "private_transactions"},
		u.Name, u.Email, u.GoogleID, u.Role, u.Balance, u.OnLeaderboard, u.PrivateTransactions)
}

func (t *sqlTx) InsertTransaction(ctx context.Context, tr types.TransactionRow) (int64, error) {
	return t.insert(ctx, TableTransaction,
		[]string{"user", "amount", "datetime"},
		tr.User, tr.Amount, tr.Datetime.Unix())
}

func (t *sqlTx) InsertTransactionItem(ctx context.Context, item types.TransactionItemRow) (int64, error) {
	return t.insert(ctx, TableTransactionItem,
		[]string{"transaction_id", "product", "quantity", "name", "price"},
		item.TransactionID, item.Product, item.Quantity, item.Name, item.Price)
}

func (t *sqlTx) Commit() error {
	return t.tx.Commit()
}

func (t *sqlTx) Rollback() error {
	return t.tx.Rollback()
}

func (t *sqlTx) insert(ctx context.Context, table string, columns []string, values ...interface{}) (int64, error) {
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = t.dialect.Quote(col)
	}

	builder := t.qb.Insert(t.dialect.Quote(table)).Columns(quoted...).Values(values...)
	if t.dialect.Returning {
		builder = builder.Suffix("RETURNING " + t.dialect.Quote("id"))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert into %s: %w", table, err)
	}

	if t.dialect.Returning {
		var id int64
		if err := t.tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		return id, nil
	}

	result, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read id inserted into %s: %w", table, err)
	}
	return id, nil
}
