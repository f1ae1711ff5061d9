// Package main provides a CLI tool for seeding the database with demo catalogs.
//
//	seed -hash 'Admin123!'        print a bcrypt hash for auth.admin_password_hash
//	seed -config config.yaml      seed demo data and print a development token
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"gestobra/internal/config"
	appctx "gestobra/internal/core/context"
	"gestobra/internal/domain/auth"
	"gestobra/internal/domain/catalogs/client"
	"gestobra/internal/domain/catalogs/employee"
	"gestobra/internal/domain/catalogs/material"
	"gestobra/internal/domain/catalogs/project"
	"gestobra/internal/domain/catalogs/tool"
	"gestobra/internal/infrastructure/storage/postgres"
	"gestobra/internal/infrastructure/storage/postgres/catalog_repo"
	"gestobra/pkg/logger"
	"gestobra/pkg/numerator"
)

func main() {
	configPath := flag.String("config", os.Getenv("GESTOBRA_CONFIG"), "path to a YAML config file")
	hash := flag.String("hash", "", "print the bcrypt hash of this password and exit")
	flag.Parse()

	if *hash != "" {
		h, err := auth.HashPassword(*hash)
		if err != nil {
			fmt.Printf("failed to hash password: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(h)
		return
	}

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalw("failed to load config", "error", err)
	}

	ctx := logger.WithLogger(context.Background(), log)

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.Postgres.DSN))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedDemoData(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed demo data", "error", err)
	}

	if cfg.AuthEnabled() {
		token, expiresAt, err := auth.NewJWTService(auth.DefaultJWTConfig(cfg.Auth.JWTSecret)).
			GenerateAccessToken(appctx.UserContext{UserID: "seed", Email: "seed@gestobra.local", Role: auth.RoleAdmin})
		if err != nil {
			log.Fatalw("failed to issue development token", "error", err)
		}
		log.Infow("development token", "expires_at", expiresAt)
		fmt.Println(token)
	}

	log.Info("seeding completed successfully")
}

func qty(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// seedDemoData creates the demo catalogs through the domain services so codes,
// validation and hooks behave as in the API. An existing material list means
// the database was seeded already.
func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	txm := postgres.NewTxManager(pool)
	codes := numerator.New(func(ctx context.Context) numerator.Querier {
		return txm.GetQuerier(ctx)
	}, nil)

	clientRepo := catalog_repo.NewClientRepo(txm)
	materials := material.NewService(catalog_repo.NewMaterialRepo(txm), txm, codes, nil)
	tools := tool.NewService(catalog_repo.NewToolRepo(txm), txm, codes, nil)
	clients := client.NewService(clientRepo, txm, codes)
	employees := employee.NewService(catalog_repo.NewEmployeeRepo(txm), txm, codes)
	projects := project.NewService(catalog_repo.NewProjectRepo(txm), clientRepo, txm, codes)

	existing, err := materials.All(ctx)
	if err != nil {
		return fmt.Errorf("check existing materials: %w", err)
	}
	if len(existing) > 0 {
		log.Infow("demo data already present, skipping", "materials", len(existing))
		return nil
	}

	log.Info("seeding demo data...")

	return txm.RunInTransaction(ctx, func(ctx context.Context) error {
		// 1. Materials: one per stock level
		cement := material.NewMaterial("Cemento Portland", "bolsa", qty("40"), qty("25"))
		cement.UnitPrice = qty("7.90")
		sand := material.NewMaterial("Arena gruesa", "m3", qty("6"), qty("4"))
		sand.UnitPrice = qty("18.50")
		rebar := material.NewMaterial("Fierro 12mm", "barra", qty("3"), qty("20"))
		rebar.UnitPrice = qty("9.30")
		for _, m := range []*material.Material{cement, sand, rebar} {
			if err := materials.Create(ctx, m); err != nil {
				return fmt.Errorf("create material %s: %w", m.Name, err)
			}
		}

		// 2. Tools
		drill := tool.NewTool("Taladro percutor", qty("4"), qty("2"))
		drill.Brand = "Bosch"
		mixer := tool.NewTool("Betonera 150L", qty("1"), qty("1"))
		mixer.Condition = tool.ConditionInRepair
		for _, t := range []*tool.Tool{drill, mixer} {
			if err := tools.Create(ctx, t); err != nil {
				return fmt.Errorf("create tool %s: %w", t.Name, err)
			}
		}

		// 3. Clients and projects
		acme := client.NewClient("Inmobiliaria Los Andes")
		acme.Company = "Los Andes SpA"
		acme.Email = "contacto@losandes.test"
		acme.Approved = true
		if err := clients.Create(ctx, acme); err != nil {
			return fmt.Errorf("create client: %w", err)
		}

		tower := project.NewProject("Edificio Mirador")
		tower.ClientID = &acme.ID
		tower.Location = "Valparaíso"
		tower.Status = project.StatusInProgress
		tower.StartDate = day("2026-03-02")
		tower.Budget = qty("250000000")
		if err := projects.Create(ctx, tower); err != nil {
			return fmt.Errorf("create project: %w", err)
		}

		// 4. Employees
		foreman := employee.NewEmployee("Luis Soto", "capataz")
		foreman.HiredAt = day("2024-08-01")
		if err := employees.Create(ctx, foreman); err != nil {
			return fmt.Errorf("create employee: %w", err)
		}

		log.Infow("demo data seeded",
			"materials", 3,
			"tools", 2,
			"clients", 1,
			"projects", 1,
			"employees", 1,
		)
		return nil
	})
}
