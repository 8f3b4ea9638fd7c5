// Package fixture loads the contacts written by the bulk seed.
package fixture

import (
	"context"
	_ "embed"
	"log/slog"

	"contactlog/config"
	"contactlog/internal/domain/entity"
	domainerrors "contactlog/internal/domain/errors"
	"contactlog/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gopkg.in/yaml.v3"
)

//go:embed contacts.yaml
var embeddedContacts []byte

type contactFixture struct {
	Name struct {
		FirstName string `yaml:"firstName"`
		LastName  string `yaml:"lastName"`
	} `yaml:"name"`
	Email       string `yaml:"email"`
	PhoneNumber string `yaml:"phoneNumber"`
	Address     struct {
		Street      string `yaml:"street"`
		HouseNumber string `yaml:"houseNumber"`
		City        string `yaml:"city"`
		ZipCode     string `yaml:"zipCode"`
	} `yaml:"address"`
}

type source struct {
	bucketURL string
	key       string
	logger    *slog.Logger
}

// NewSource returns a FixtureSource reading seed.key from seed.bucketUrl,
// or the embedded fixtures when no bucket is configured.
func NewSource(cfg *config.Config, logger *slog.Logger) service.FixtureSource {
	return &source{
		bucketURL: cfg.Seed.BucketURL,
		key:       cfg.Seed.Key,
		logger:    logger,
	}
}

func (s *source) LoadContacts(ctx context.Context) ([]*entity.Contact, error) {
	if s.bucketURL == "" {
		return Parse(embeddedContacts)
	}

	data, err := s.read(ctx)
	if err != nil {
		s.logger.Error("Failed to read seed fixtures",
			slog.String("bucket", s.bucketURL),
			slog.String("key", s.key),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrSeedFixturesUnavailable.WrapMessage(err.Error())
	}

	return Parse(data)
}

func (s *source) read(ctx context.Context) ([]byte, error) {
	bucket, err := blob.OpenBucket(ctx, s.bucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open fixture bucket")
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, s.key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read fixture %s", s.key)
	}

	return data, nil
}

// Parse decodes a YAML (or JSON) list of contacts.
func Parse(data []byte) ([]*entity.Contact, error) {
	var fixtures []contactFixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, domainerrors.ErrSeedFixturesUnavailable.WrapMessage("malformed fixture document: " + err.Error())
	}

	contacts := make([]*entity.Contact, 0, len(fixtures))
	for _, f := range fixtures {
		contacts = append(contacts, &entity.Contact{
			Name:        entity.Name{FirstName: f.Name.FirstName, LastName: f.Name.LastName},
			Email:       f.Email,
			PhoneNumber: f.PhoneNumber,
			Address: entity.Address{
				Street:      f.Address.Street,
				HouseNumber: f.Address.HouseNumber,
				City:        f.Address.City,
				ZipCode:     f.Address.ZipCode,
			},
		})
	}

	return contacts, nil
}
