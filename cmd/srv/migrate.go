package main

import (
	"github.com/influencerflow/backend/internal/repository"
	"github.com/influencerflow/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(*cli.Context) error {
	db, err := s.newDatabase().DB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repository.DoSqlMigration(s.ctx, db); err != nil {
		xcontext.Logger(s.ctx).Errorf("Cannot migrate database: %v", err)
		return err
	}

	xcontext.Logger(s.ctx).Infof("Migrated database successfully")
	return nil
}
