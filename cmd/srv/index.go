package main

import (
	"github.com/influencerflow/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startIndex(cctx *cli.Context) error {
	s.loadDatabase()
	s.loadRepos()
	s.loadSearchCaller()
	defer s.searchCaller.Close()
	s.loadDomains()

	if ids := cctx.StringSlice("remove"); len(ids) > 0 {
		removed, err := s.indexerDomain.Remove(s.ctx, ids)
		if err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot remove influencers after %d ids: %v", removed, err)
			return err
		}

		xcontext.Logger(s.ctx).Infof("Removed %d influencers from the index", removed)
		return nil
	}

	total, err := s.indexerDomain.IndexAll(s.ctx)
	if err != nil {
		xcontext.Logger(s.ctx).Errorf("Cannot index influencers after %d rows: %v", total, err)
		return err
	}

	xcontext.Logger(s.ctx).Infof("Indexed %d influencers", total)
	return nil
}
