package tables

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/studentcoach/alpsbench/internal/codec"
	"github.com/studentcoach/alpsbench/internal/domain"
)

//go:embed data/*.yaml
var embedded embed.FS

// percentileFile is the shape of the per-percentile A-Level band files.
type percentileFile struct {
	Percentile int          `yaml:"percentile"`
	Bands      []ALevelBand `yaml:"bands"`
}

// factorFile is the shape of the per-percentile subject factor files.
type factorFile struct {
	Percentile int                `yaml:"percentile"`
	Factors    map[string]float64 `yaml:"factors"`
}

// familyFile holds the qualification family band tables, which are shared
// across percentiles.
type familyFile struct {
	IB              []IBBand              `yaml:"ib"`
	PreU            []PreUBand            `yaml:"pre_u"`
	Btec2016Main    []Btec2016Band        `yaml:"btec2016_main"`
	Btec2016OneYear []Btec2016OneYearBand `yaml:"btec2016_one_year"`
	Btec2010        []Btec2010Band        `yaml:"btec2010"`
	UAL             []UALBand             `yaml:"ual"`
	WJEC            []WJECBand            `yaml:"wjec"`
	Cache           []CacheBand           `yaml:"cache"`
}

// gradePointsFile holds the grade string to points mappings.
type gradePointsFile struct {
	Btec2010       map[string]map[string]float64 `yaml:"btec2010"`
	Qualifications map[string]map[string]float64 `yaml:"qualifications"`
}

// Load builds a Store from the tables embedded in the binary.
func Load() (*Store, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("embedded tables: %w", err)
	}
	return LoadFS(sub)
}

// LoadDir builds a Store from YAML files in a directory, overriding the
// embedded tables.
func LoadDir(dir string) (*Store, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("tables directory: %w", err)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS builds a Store from a filesystem holding the table files. Every
// file is required; a missing or malformed file fails the whole load.
func LoadFS(fsys fs.FS) (*Store, error) {
	s := &Store{
		alevel:  make(map[domain.Percentile][]ALevelBand, len(domain.AllPercentiles())),
		factors: make(map[domain.Percentile]map[string]float64, len(domain.AllPercentiles())),
	}

	for _, p := range domain.AllPercentiles() {
		var pf percentileFile
		if err := decodeYAML(fsys, fmt.Sprintf("alevel_bands_%d.yaml", int(p)), &pf); err != nil {
			return nil, err
		}
		if pf.Percentile != int(p) {
			return nil, fmt.Errorf("alevel_bands_%d.yaml declares percentile %d", int(p), pf.Percentile)
		}
		s.alevel[p] = pf.Bands

		var ff factorFile
		if err := decodeYAML(fsys, fmt.Sprintf("subject_factors_%d.yaml", int(p)), &ff); err != nil {
			return nil, err
		}
		if ff.Percentile != int(p) {
			return nil, fmt.Errorf("subject_factors_%d.yaml declares percentile %d", int(p), ff.Percentile)
		}
		s.factors[p] = ff.Factors
	}

	var fam familyFile
	if err := decodeYAML(fsys, "family_bands.yaml", &fam); err != nil {
		return nil, err
	}
	s.ib = fam.IB
	s.preU = fam.PreU
	s.btec2016Main = fam.Btec2016Main
	s.btec2016OneYear = fam.Btec2016OneYear
	s.btec2010 = fam.Btec2010
	s.ual = fam.UAL
	s.wjec = fam.WJEC
	s.cache = fam.Cache

	var gp gradePointsFile
	if err := decodeYAML(fsys, "grade_points.yaml", &gp); err != nil {
		return nil, err
	}
	s.btec2010Codec = make(codec.Table, len(gp.Btec2010))
	for scope, grades := range gp.Btec2010 {
		sc, ok := codec.ParseSizeScope(scope)
		if !ok {
			return nil, fmt.Errorf("grade_points.yaml: unknown btec2010 size scope %q", scope)
		}
		s.btec2010Codec[sc] = grades
	}
	s.gradePoints = codec.GradeTable(gp.Qualifications)

	return s, nil
}

func decodeYAML(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
