// internal/app/store/members/source.go
package memberstore

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dalemusser/freelancehub/internal/domain/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gopkg.in/yaml.v3"
)

// Source names accepted by the data_source config key.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceMongo    = "mongo"
	SourcePostgres = "postgres"
)

// ErrUnknownSource is returned for an unsupported data_source value.
var ErrUnknownSource = errors.New("unknown member data source")

// Source supplies the ordered member records at startup.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]models.Member, error)
}

var tracer = otel.Tracer("freelancehub/memberstore")

// Open loads all records from src and builds the Store.
func Open(ctx context.Context, src Source) (*Store, error) {
	ctx, span := tracer.Start(ctx, "memberstore.Open")
	defer span.End()
	span.SetAttributes(attribute.String("member.source", src.Name()))

	members, err := src.Load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return nil, fmt.Errorf("load members from %s: %w", src.Name(), err)
	}
	store, err := New(src.Name(), members)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid dataset")
		return nil, fmt.Errorf("members from %s: %w", src.Name(), err)
	}
	span.SetAttributes(attribute.Int("member.count", store.Len()))
	return store, nil
}

//go:embed seed/members.json
var seedFS embed.FS

// EmbeddedSource serves the dataset compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return SourceEmbedded }

func (EmbeddedSource) Load(ctx context.Context) ([]models.Member, error) {
	b, err := seedFS.ReadFile("seed/members.json")
	if err != nil {
		return nil, err
	}
	return decodeJSON(b)
}

// FileSource reads a JSON (.json) or YAML (.yaml, .yml) file holding an
// array of member records.
type FileSource struct {
	Path string
}

func (f FileSource) Name() string { return SourceFile }

func (f FileSource) Load(ctx context.Context) ([]models.Member, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml":
		return decodeYAML(b)
	case ".json":
		return decodeJSON(b)
	default:
		return nil, fmt.Errorf("unsupported data file extension %q (want .json, .yaml or .yml)", filepath.Ext(f.Path))
	}
}

func decodeJSON(b []byte) ([]models.Member, error) {
	var members []models.Member
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&members); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return members, nil
}

func decodeYAML(b []byte) ([]models.Member, error) {
	var members []models.Member
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&members); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return members, nil
}
