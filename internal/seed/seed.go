package seed

import (
	"context"
	"errors"
	"fmt"

	"conecta-joven/internal/database"
	"conecta-joven/internal/model"
	"conecta-joven/internal/service"
	"conecta-joven/internal/store"

	"github.com/rs/zerolog"
)

// 供測試覆寫
var (
	ensureUser   = store.EnsureUser
	ensureJob    = store.EnsureJob
	hashPassword = service.HashPassword
)

// Options 控制要寫入哪些預設資料
type Options struct {
	AdminEmail    string
	AdminPassword string
	// Demo 為 true 時另外建立示範使用者與三筆職缺
	Demo bool
}

type account struct {
	name     string
	email    string
	password string
	role     string
	admin    bool
}

var demoJobs = []model.Job{
	{Title: "Asistente de Ventas", Company: "Comercial ABC", Link: "https://pe.computrabajo.com/", Description: "Atención al cliente y metas semanales."},
	{Title: "Soporte TI Jr.", Company: "Tech Perú", Link: "https://www.bumeran.com.pe/", Description: "Brindar soporte a usuarios y documentar incidencias."},
	{Title: "Auxiliar Administrativo", Company: "Servicios Lima", Link: "https://www.empleosperu.gob.pe/portal-mtpe/#/", Description: "Gestión documental y data entry."},
}

// Run 冪等寫入預設帳號與職缺；重複執行不會產生重複資料
func Run(ctx context.Context, db database.DB, opts Options, lgr zerolog.Logger) error {
	if opts.AdminEmail == "" || opts.AdminPassword == "" {
		return fmt.Errorf("seed: admin email and password are required")
	}
	lgr.Info().Bool("demo", opts.Demo).Msg("Checking/Creating default data")

	adminID, err := ensureAccount(ctx, db, account{
		name:     "Administrador",
		email:    opts.AdminEmail,
		password: opts.AdminPassword,
		role:     model.RoleMentor,
		admin:    true,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}
	if !opts.Demo {
		return nil
	}

	var finalErr error
	if _, err := ensureAccount(ctx, db, account{
		name:     "Usuario Demo",
		email:    "demo@conectajoven.pe",
		password: "demo123",
		role:     model.RoleStudent,
	}); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo user")
		finalErr = errors.Join(finalErr, err)
	}

	for _, j := range demoJobs {
		job := j
		job.CreatedBy = &adminID
		created, err := ensureJob(ctx, db, &job)
		if err != nil {
			lgr.Error().Err(err).Str("title", job.Title).Msg("Error creating demo job")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if created {
			lgr.Info().Str("title", job.Title).Msg("Demo job created")
		}
	}
	return finalErr
}

func ensureAccount(ctx context.Context, db database.DB, a account) (int, error) {
	hash, err := hashPassword(a.password)
	if err != nil {
		return 0, fmt.Errorf("hash password for %s: %w", a.email, err)
	}
	return ensureUser(ctx, db, &model.User{
		Name:         a.name,
		Email:        service.NormalizeEmail(a.email),
		PasswordHash: hash,
		Role:         a.role,
		IsAdmin:      a.admin,
	})
}
