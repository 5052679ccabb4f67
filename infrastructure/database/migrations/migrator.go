// Package migrations aplica as migrações embutidas das tabelas de snapshot
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var files embed.FS

// Up aplica todas as migrações pendentes. Um banco em estado sujo é forçado
// para a última versão registrada antes de continuar.
func Up(db *sql.DB) error {
	source, err := iofs.New(files, "sql")
	if err != nil {
		return fmt.Errorf("erro ao carregar migrações: %w", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("erro ao criar driver de migração: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("erro ao criar instância de migração: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("erro ao obter versão das migrações: %w", err)
	}

	if dirty {
		logrus.Warnf("Banco em estado sujo na versão %d, forçando versão", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("erro ao forçar versão %d: %w", version, err)
		}
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.Info("Nenhuma migração pendente")
			return nil
		}
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	newVersion, _, _ := m.Version()
	logrus.Infof("Migrações aplicadas com sucesso, versão atual: %d", newVersion)

	return nil
}
