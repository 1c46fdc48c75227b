package app

import (
	"context"
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
	"github.com/uphy/productfeed/config"
	"github.com/uphy/productfeed/converter"
	"github.com/uphy/productfeed/generator"
	"github.com/uphy/productfeed/repo"
	"github.com/urfave/cli/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

type App struct {
	app              *cli.App
	config           *config.Config
	store            repo.ProductStore
	feedGenerator    *generator.FeedGenerator
	converterOptions converter.Options
}

func New() *App {
	a := cli.NewApp()
	a.Name = "productfeed"
	a.Usage = "Serve the product catalog as an XML feed"
	app := &App{app: a}

	a.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   "config.yml",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Value: false,
		},
	}
	a.Before = func(c *cli.Context) error {
		if c.Bool("debug") {
			log.SetLevel(log.DEBUG)
		}

		// load config
		configFile := c.String("config")
		cnf, err := config.ParseConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config file: configFile=%s, err=%w", configFile, err)
		}
		app.config = cnf
		return nil
	}
	a.After = func(c *cli.Context) error {
		if app.store != nil {
			return app.store.Close()
		}
		return nil
	}

	a.Commands = []*cli.Command{
		app.generateCommand(),
		app.startServerCommand(),
		app.importCommand(),
	}
	return app
}

// open connects the configured content store and builds the generator.
func (a *App) open() error {
	store, err := openStore(a.config)
	if err != nil {
		return err
	}
	a.setup(a.config, store)
	return nil
}

func (a *App) setup(cnf *config.Config, store repo.ProductStore) {
	a.config = cnf
	a.store = store
	a.feedGenerator = generator.New(store, generator.Options{
		Currency:  cnf.Feed.Currency,
		ImageType: cnf.Feed.ImageType,
	})
	a.converterOptions = converter.Options{
		Pretty:      cnf.Feed.Pretty == nil || *cnf.Feed.Pretty,
		Title:       cnf.Feed.Title,
		Link:        cnf.Feed.Link,
		Description: cnf.Feed.Description,
	}
}

func (a *App) generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate the feed once and print it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   converter.FormatXML,
				Usage:   "Export format (xml/rss/atom/html)",
			},
		},
		Action: func(c *cli.Context) error {
			if err := a.open(); err != nil {
				return err
			}
			result, err := a.generateFeed(c.Context, c.String("format"))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, result.Result)
			return nil
		},
	}
}

func (a *App) importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Load product records from a JSON export into the local badger store",
		ArgsUsage: "File of product records (array or query response)",
		Action: func(c *cli.Context) error {
			file := c.Args().First()
			if file == "" {
				return errors.New("product file is required")
			}
			products, err := repo.LoadProductsFile(file)
			if err != nil {
				return err
			}

			// the badger directory is locked while open, so reuse the
			// content store when it is the badger backend
			var store *repo.BadgerStore
			if a.config.ContentStore.Type == config.StoreBadger {
				if err := a.open(); err != nil {
					return err
				}
				store = a.store.(*repo.BadgerStore)
			} else {
				s, err := repo.NewBadgerStore(a.config.ContentStore.Badger.Dir)
				if err != nil {
					return err
				}
				defer s.Close()
				store = s
			}
			if err := store.PutProducts(products); err != nil {
				return errors.Wrap(err, "failed to import products")
			}
			log.Infof("imported products: count=%d, dir=%s", len(products), a.config.ContentStore.Badger.Dir)
			return nil
		},
	}
}

// generateFeed runs one fetch, transform and serialize pass. Any failure past
// format selection is a *generator.GenerationFailure.
func (a *App) generateFeed(ctx context.Context, format string) (*converter.Result, error) {
	conv := converter.GetConverter(format, a.converterOptions)
	if conv == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	catalog, err := a.feedGenerator.Generate(ctx)
	if err != nil {
		return nil, err
	}
	result, err := conv.Convert(catalog)
	if err != nil {
		return nil, generator.Fail(generator.StageSerialize, err)
	}
	return result, nil
}

func (a *App) Run(args []string) error {
	return a.app.Run(args)
}
