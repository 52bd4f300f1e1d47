// Package e2e exercises the full pipeline from a catalog file on disk
// through snapshot, candidate search, and ranking.
package e2e

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// CatalogEntry is one raw record in the generated catalog document.
type CatalogEntry struct {
	Title       string   `json:"title"`
	Subjects    []string `json:"subject"`
	Description string   `json:"description"`
	Creator     string   `json:"creator"`
	Publisher   string   `json:"publisher"`
	Issued      string   `json:"issued"`
	Extent      string   `json:"extent"`
}

// BuildCatalog returns a corpus of records across a few subject
// clusters. Each cluster shares subjects and vocabulary, so
// recommendations within a cluster must outrank records outside it.
func BuildCatalog() []CatalogEntry {
	clusters := []struct {
		subjects  []string
		publisher string
		titles    []string
		descs     []string
	}{
		{
			subjects:  []string{"도서관학", "문헌정보"},
			publisher: "한국도서관협회",
			titles:    []string{"도서관 경영론", "장서 개발론", "정보서비스론"},
			descs: []string{
				"도서관 경영과 조직 운영의 이론과 실제",
				"장서 개발 정책과 수서 업무의 이론과 실제",
				"정보서비스와 이용자 교육의 이론과 실제",
			},
		},
		{
			subjects:  []string{"천문학", "우주과학"},
			publisher: "과학사연구회",
			titles:    []string{"항성 천문학", "행성 탐사의 역사", "우주론 입문"},
			descs: []string{
				"항성의 진화와 분광 관측 연구",
				"행성 탐사선과 태양계 관측 연구",
				"우주의 구조와 팽창에 관한 관측 연구",
			},
		},
		{
			subjects:  []string{"한국사", "역사"},
			publisher: "역사비평사",
			titles:    []string{"조선 후기 사회사", "고려 시대 정치사", "근대 한국의 형성"},
			descs: []string{
				"조선 후기의 사회 변동과 신분제 연구",
				"고려 시대의 정치 제도와 권력 구조 연구",
				"개항기 이후 근대 한국 사회의 형성 과정 연구",
			},
		},
	}

	var entries []CatalogEntry
	year := 2010
	for ci, c := range clusters {
		for i, title := range c.titles {
			entries = append(entries, CatalogEntry{
				Title:       title,
				Subjects:    c.subjects,
				Description: c.descs[i],
				Creator:     fmt.Sprintf("저자%d%d", ci, i),
				Publisher:   c.publisher,
				Issued:      fmt.Sprintf("%d", year+ci*3+i),
				Extent:      fmt.Sprintf("%dp", 150+50*i),
			})
		}
	}

	// One record that falls outside the default page filter.
	entries = append(entries, CatalogEntry{
		Title:    "대형 전집",
		Subjects: []string{"전집"},
		Issued:   "2015",
		Extent:   "5000p",
	})
	return entries
}

// WriteCatalogFile writes the corpus as a JSON-LD style document under
// dir and returns its path.
func WriteCatalogFile(dir string, entries []CatalogEntry) (string, error) {
	doc := map[string]any{"@graph": entries}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
