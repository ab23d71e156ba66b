package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/logging"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/reportfile"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/store"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/survey"
)

type importOptions struct {
	file     string
	survey   string
	question string
	mongoURI string
	mongoDB  string
}

type tallySaver interface {
	Save(ctx context.Context, surveyID, questionKey string, rs survey.ResponseSet) error
}

func (a *App) newImportCmd() *cobra.Command {
	opts := &importOptions{}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Store the responses of a definition as question tallies",
		Long: `Store the responses of a report definition in MongoDB so the server can
render them from /v1/surveys/{survey}/questions/{question}/reports/{report}.png.

Stored categories missing from the file are removed.

Example:
  surveyreport import -f adoption.yaml --survey spring-2025 --question adoption`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			repo, disconnect, err := connectTallies(cmd.Context(), opts.mongoURI, opts.mongoDB)
			if err != nil {
				return err
			}
			defer disconnect()
			return a.importTallies(cmd.Context(), repo, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to report definition (YAML or JSON)")
	cmd.Flags().StringVar(&opts.survey, "survey", "", "Survey ID")
	cmd.Flags().StringVar(&opts.question, "question", "", "Question key")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", envOr("MONGO_URI", ""), "MongoDB URI for stored tallies")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", envOr("MONGO_DB", "surveys"), "MongoDB database name")
	return cmd
}

func (o *importOptions) validate() error {
	switch {
	case o.file == "":
		return fmt.Errorf("report definition path is required (-f flag)")
	case o.survey == "" || o.question == "":
		return fmt.Errorf("--survey and --question are required")
	case o.mongoURI == "":
		return fmt.Errorf("MongoDB URI is required (--mongo-uri or MONGO_URI)")
	}
	return nil
}

func (a *App) importTallies(ctx context.Context, s tallySaver, opts *importOptions) error {
	data, err := os.ReadFile(opts.file)
	if err != nil {
		return fmt.Errorf("read report definition: %w", err)
	}
	rs, err := reportfile.ParseResponses(data)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.file, err)
	}
	if err := s.Save(ctx, opts.survey, opts.question, rs); err != nil {
		return err
	}
	logging.Info().
		Add(logging.Str("survey", opts.survey)).
		Add(logging.Str("question", opts.question)).
		Add(logging.Categories(rs.Len())).
		Msg("tallies saved")
	fmt.Fprintf(a.stdout, "stored %d categories (%d responses) for %s/%s\n", rs.Len(), rs.Total(), opts.survey, opts.question)
	return nil
}

// connectTallies opens the tally repository and ensures its indexes. The returned
// func disconnects the client.
func connectTallies(ctx context.Context, uri, db string) (*store.TallyRepo, func(), error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	disconnect := func() { client.Disconnect(context.Background()) }
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		disconnect()
		return nil, nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	repo := store.NewTallyRepo(client.Database(db))
	if err := repo.EnsureIndexes(pingCtx); err != nil {
		logging.Warnf("tally index: %v", err)
	}
	logging.Infof("connected to MongoDB database %s", db)
	return repo, disconnect, nil
}
