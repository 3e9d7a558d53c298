package main

import (
	"github.com/urfave/cli/v2"
)

func (s *srv) loadApp() {
	configFlag := &cli.StringFlag{
		Name:  "config",
		Usage: "Path of a toml file overriding the environment configs",
	}

	s.app = cli.NewApp()
	s.app.Action = cli.ShowAppHelp
	s.app.Name = "InfluencerFlow"
	s.app.Usage = "Influencer discovery and outreach backend"
	s.app.Flags = []cli.Flag{configFlag}
	s.app.Before = s.loadConfig
	s.app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: `Used to start the main service which serves every api and the outreach form.`,
		},
		{
			Action:      s.startSearchRPC,
			Name:        "search",
			Usage:       "Start service search",
			Category:    "Search",
			Description: `Used to start the rpc server hosting the influencer search index.`,
		},
		{
			Action:      s.startMigrate,
			Name:        "migrate",
			Usage:       "Migrate the database",
			Category:    "Database",
			Description: `Used to apply the versioned sql migrations to the database.`,
		},
		{
			Action:      s.startIndex,
			Name:        "index",
			Usage:       "Index influencers",
			Category:    "Search",
			Description: `Used to push every influencer row of the database to the search service.
With --remove, the given influencers deleted from the database are removed from the index instead.`,
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:  "remove",
					Usage: "Id of a deleted influencer to remove from the index, can be repeated",
				},
			},
		},
	}
}
