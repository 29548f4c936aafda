package instance

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/bamreyes/Project-Green/model"
)

// Reader reads a project catalog or a target table from a file
type Reader struct {
	filename string
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
	}
}

// ReadCatalog returns the projects listed in the file. Files ending in
// .yaml or .yml are read as YAML, anything else as JSON.
func (r *Reader) ReadCatalog() (model.Catalog, error) {
	data, err := os.ReadFile(r.filename)
	if err != nil {
		return nil, errors.Wrap(err, "reading catalog")
	}

	var catalog model.Catalog
	if r.isYAML() {
		err = yaml.Unmarshal(data, &catalog)
	} else {
		err = json.Unmarshal(data, &catalog)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parsing catalog %s", r.filename)
	}

	return catalog, nil
}

// ReadTargets returns the target table in the file. A missing unit_cap
// defaults to model.DefaultUnitCap.
func (r *Reader) ReadTargets() (*model.Targets, error) {
	data, err := os.ReadFile(r.filename)
	if err != nil {
		return nil, errors.Wrap(err, "reading targets")
	}

	targets := &model.Targets{UnitCap: model.DefaultUnitCap}
	if err := yaml.Unmarshal(data, targets); err != nil {
		return nil, errors.Wrapf(err, "parsing targets %s", r.filename)
	}
	if err := targets.Validate(); err != nil {
		return nil, errors.Wrap(err, r.filename)
	}

	return targets, nil
}

func (r *Reader) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(r.filename))
	return ext == ".yaml" || ext == ".yml"
}
