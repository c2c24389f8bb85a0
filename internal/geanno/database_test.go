package geanno

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadDatabase(t *testing.T) {
	configs, err := ReadDatabase(filepath.Join("testdata", "database.tsv"))
	if err != nil {
		t.Fatalf("ReadDatabase() error = %v", err)
	}

	if len(configs) != 3 {
		t.Fatalf("ReadDatabase() = %d configs, want 3", len(configs))
	}

	genes := configs[0]
	if filepath.Base(genes.File) != "genes.bed" {
		t.Errorf("FILENAME = %s, want genes.bed", genes.File)
	}
	if !filepath.IsAbs(genes.File) && !strings.HasPrefix(genes.File, "testdata") {
		t.Errorf("FILENAME %s was not resolved against the table's directory", genes.File)
	}
	if genes.RegionType != "Gene.Name" {
		t.Errorf("REGION.TYPE = %s, want Gene.Name", genes.RegionType)
	}
	if genes.By != ByName {
		t.Errorf("ANNOTATION.BY = %s, want NAME", genes.By)
	}
	if genes.MaxDistance != 1000 {
		t.Errorf("MAX.DISTANCE = %d, want 1000", genes.MaxDistance)
	}
	if genes.DistanceTo != AnchorStart {
		t.Errorf("DISTANCE.TO = %s, want START", genes.DistanceTo)
	}
	if genes.Hits.Kind != HitsAll {
		t.Errorf("N.HITS = %s, want ALL", genes.Hits)
	}
	if genes.NameCol != -1 || genes.nameColumn() != 3 {
		t.Errorf("NAME.COL = %d (column %d), want NA defaulting to column 3", genes.NameCol, genes.nameColumn())
	}

	enhancers := configs[1]
	if enhancers.By != BySource || enhancers.Source != "E045" {
		t.Errorf("SOURCE config = %s/%s, want SOURCE/E045", enhancers.By, enhancers.Source)
	}
	if enhancers.RegionType != configs[2].RegionType {
		t.Errorf("enhancer rows have different region types: %s vs %s", enhancers.RegionType, configs[2].RegionType)
	}
}

func TestReadDatabase_errors(t *testing.T) {
	header := "FILENAME\tREGION.TYPE\tSOURCE\tANNOTATION.BY\tMAX.DISTANCE\tDISTANCE.TO\tN.HITS\tNAME.COL\n"

	tests := []struct {
		name    string
		table   string
		wantErr string
	}{
		{
			"missing required column",
			"FILENAME\tREGION.TYPE\tSOURCE\tANNOTATION.BY\tMAX.DISTANCE\tDISTANCE.TO\tN.HITS\n" +
				"refs.bed\tGenes\tsrc\tSOURCE\t0\tREGION\tALL\n",
			"NAME.COL is a required column",
		},
		{
			"empty table",
			"",
			"empty database table",
		},
		{
			"unknown annotation by token",
			header + "refs.bed\tGenes\tsrc\tNEITHER\t0\tREGION\tALL\tNA\n",
			"ANNOTATION.BY must be SOURCE or NAME",
		},
		{
			"unknown distance to token",
			header + "refs.bed\tGenes\tsrc\tSOURCE\t0\tCENTER\tALL\tNA\n",
			"DISTANCE.TO must be START, END, MID or REGION",
		},
		{
			"negative max distance",
			header + "refs.bed\tGenes\tsrc\tSOURCE\t-5\tREGION\tALL\tNA\n",
			"MAX.DISTANCE must be >= 0",
		},
		{
			"max distance is not a number",
			header + "refs.bed\tGenes\tsrc\tSOURCE\tfar\tREGION\tALL\tNA\n",
			"MAX.DISTANCE \"far\" is not an integer",
		},
		{
			"zero hit count",
			header + "refs.bed\tGenes\tsrc\tSOURCE\t0\tREGION\t0\tNA\n",
			"N.HITS must be ALL, CLOSEST or a positive count",
		},
		{
			"garbage hit count",
			header + "refs.bed\tGenes\tsrc\tSOURCE\t0\tREGION\tSOME\tNA\n",
			"N.HITS must be ALL, CLOSEST or a positive count",
		},
		{
			"empty region type",
			header + "refs.bed\t\tsrc\tSOURCE\t0\tREGION\tALL\tNA\n",
			"REGION.TYPE must not be empty",
		},
		{
			"source annotation without a source",
			header + "refs.bed\tGenes\t\tSOURCE\t0\tREGION\tALL\tNA\n",
			"SOURCE must not be empty",
		},
		{
			"short row",
			header + "refs.bed\tGenes\tsrc\n",
			"3 columns in row",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "database.tsv")
			if err := os.WriteFile(path, []byte(tt.table), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := ReadDatabase(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ReadDatabase() error = %v, want it to mention %q", err, tt.wantErr)
			}

			var cerr *ConfigError
			if err != nil && !errors.As(err, &cerr) {
				t.Errorf("ReadDatabase() error = %T, want a *ConfigError", err)
			}
		})
	}
}

func Test_parseHitPolicy(t *testing.T) {
	tests := []struct {
		token   string
		want    HitPolicy
		wantErr bool
	}{
		{"ALL", HitPolicy{Kind: HitsAll}, false},
		{"all", HitPolicy{Kind: HitsAll}, false},
		{"CLOSEST", HitPolicy{Kind: HitsClosest}, false},
		{"1", HitPolicy{Kind: HitsCount, Count: 1}, false},
		{"25", HitPolicy{Kind: HitsCount, Count: 25}, false},
		{"0", HitPolicy{}, true},
		{"-3", HitPolicy{}, true},
		{"MOST", HitPolicy{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := parseHitPolicy(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHitPolicy(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseHitPolicy(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}
