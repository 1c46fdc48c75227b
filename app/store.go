package app

import (
	"github.com/pkg/errors"
	"github.com/uphy/productfeed/config"
	"github.com/uphy/productfeed/repo"
	"github.com/uphy/productfeed/template"
)

func openStore(cnf *config.Config) (repo.ProductStore, error) {
	switch cnf.ContentStore.Type {
	case config.StoreSanity:
		sanityConfig, err := resolveSanityConfig(&cnf.ContentStore.Sanity)
		if err != nil {
			return nil, err
		}
		return repo.NewSanityStore(sanityConfig, nil)
	case config.StoreBadger:
		return repo.NewBadgerStore(cnf.ContentStore.Badger.Dir)
	case config.StoreMemory:
		if cnf.ContentStore.Memory.Seed == "" {
			return repo.NewMemoryStore(), nil
		}
		return repo.NewMemoryStoreFromFile(cnf.ContentStore.Memory.Seed)
	}
	return nil, errors.Errorf("unknown content store type: %s", cnf.ContentStore.Type)
}

func resolveSanityConfig(c *config.SanityConfig) (repo.SanityConfig, error) {
	ctx := template.NewTemplateContext()
	var (
		resolved repo.SanityConfig
		err      error
	)
	fields := []struct {
		name  string
		field template.TemplateField
		def   string
		dest  *string
	}{
		{"projectId", c.ProjectID, "", &resolved.ProjectID},
		{"dataset", c.Dataset, repo.DefaultDataset, &resolved.Dataset},
		{"apiVersion", c.APIVersion, repo.DefaultAPIVersion, &resolved.APIVersion},
		{"token", c.Token, "", &resolved.Token},
		{"baseUrl", c.BaseURL, "", &resolved.BaseURL},
	}
	for _, f := range fields {
		if *f.dest, err = f.field.EvaluateOr(ctx, f.def); err != nil {
			return repo.SanityConfig{}, errors.Wrapf(err, "failed to evaluate 'sanity.%s'", f.name)
		}
	}
	resolved.UseCDN = c.UseCDN
	return resolved, nil
}
