package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
	"go.uber.org/fx"

	"github.com/invoiceflow/invoiceflow/ent"
	"github.com/invoiceflow/invoiceflow/internal/config"
	"github.com/invoiceflow/invoiceflow/internal/logger"
	"github.com/invoiceflow/invoiceflow/internal/types"
)

// IClient is the database handle repositories depend on. It hides whether
// the caller is inside a transaction; Querier resolves to the right client.
type IClient interface {
	// WithTx runs fn inside a transaction. Nested calls reuse the
	// transaction already on the context.
	WithTx(ctx context.Context, fn func(context.Context) error) error

	// TxFromContext returns the transaction carried by ctx, if any
	TxFromContext(ctx context.Context) *ent.Tx

	// Querier returns the transactional client when inside WithTx,
	// otherwise the root client
	Querier(ctx context.Context) *ent.Client
}

// Client wraps ent.Client with context-propagated transaction management
type Client struct {
	entClient *ent.Client
	logger    *logger.Logger
}

func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			NewEntClient,
			NewClient,
		),
	)
}

// NewEntClient opens the postgres connection pool and builds the ent client.
// When AutoMigrate is set the schema is created on startup.
func NewEntClient(config *config.Configuration, logger *logger.Logger) (*ent.Client, error) {
	dsn := config.Postgres.GetDSN()

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(config.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(config.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(config.Postgres.ConnMaxLifetimeMinutes) * time.Minute)

	drv := entsql.OpenDB(dialect.Postgres, db)

	opts := []ent.Option{
		ent.Driver(drv),
	}
	if config.Deployment.Mode == types.RunModeLocal {
		opts = append(opts, ent.Debug())
	}

	client := ent.NewClient(opts...)

	if config.Postgres.AutoMigrate {
		if err := client.Schema.Create(context.Background()); err != nil {
			return nil, fmt.Errorf("failed creating schema resources: %w", err)
		}
	}

	return client, nil
}

func NewClient(client *ent.Client, logger *logger.Logger) IClient {
	return &Client{
		entClient: client,
		logger:    logger,
	}
}

// WithTx runs fn in a transaction that is committed on success and rolled
// back on error or panic. If ctx already carries a transaction, fn joins it
// and the outermost caller owns the commit.
func (c *Client) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx := c.TxFromContext(ctx); tx != nil {
		return fn(ctx)
	}

	tx, err := c.entClient.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	defer func() {
		if v := recover(); v != nil {
			c.logger.Errorw("rolling back transaction due to panic",
				"panic", v,
			)
			_ = tx.Rollback()
			panic(v)
		}
	}()

	txCtx := context.WithValue(ctx, types.CtxDBTransaction, tx)

	if err := fn(txCtx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("rolling back transaction: %v (original error: %w)", rerr, err)
		}
		c.logger.Errorw("rolling back transaction due to error",
			"error", err,
		)
		return err
	}

	if err := tx.Commit(); err != nil {
		c.logger.Errorw("committing transaction",
			"error", err,
		)
		return fmt.Errorf("committing transaction: %w", err)
	}

	c.logger.Debugw("committed transaction")
	return nil
}

func (c *Client) TxFromContext(ctx context.Context) *ent.Tx {
	if tx, ok := ctx.Value(types.CtxDBTransaction).(*ent.Tx); ok {
		return tx
	}
	return nil
}

func (c *Client) Querier(ctx context.Context) *ent.Client {
	if tx := c.TxFromContext(ctx); tx != nil {
		return tx.Client()
	}
	return c.entClient
}
