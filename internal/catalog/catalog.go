package catalog

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Advisor 為固定的諮詢顧問與每週可預約時段
type Advisor struct {
	Name      string   `yaml:"name" json:"name"`
	Qualities []string `yaml:"qualities" json:"qualities"`
	Slots     []string `yaml:"slots" json:"slots"`
	Photo     string   `yaml:"photo" json:"photo"`
}

type Course struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	URL         string `yaml:"url" json:"url"`
}

// Category 保持 YAML 中的順序
type Category struct {
	Name    string   `yaml:"name" json:"name"`
	Courses []Course `yaml:"courses" json:"courses"`
}

type Link struct {
	Title string `yaml:"title" json:"title,omitempty"`
	Name  string `yaml:"name" json:"name,omitempty"`
	URL   string `yaml:"url" json:"url"`
}

// Catalog 是首頁、課程與顧問的唯讀資料
type Catalog struct {
	Advisors   []Advisor  `yaml:"advisors"`
	Categories []Category `yaml:"categories"`
	News       []Link     `yaml:"news"`
	JobBoards  []Link     `yaml:"job_boards"`
}

// 供測試覆寫
var (
	readFile      = dataFS.ReadFile
	yamlUnmarshal = yaml.Unmarshal
)

var files = []string{"data/advisors.yaml", "data/courses.yaml", "data/home.yaml"}

// Load 解析內嵌的 YAML 檔，三個檔案合併成同一個 Catalog
func Load() (*Catalog, error) {
	c := &Catalog{}
	for _, name := range files {
		raw, err := readFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := yamlUnmarshal(raw, c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}
	if len(c.Advisors) == 0 {
		return nil, fmt.Errorf("catalog: no advisors defined")
	}
	return c, nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default 只解析一次，之後回傳同一份資料
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load()
	})
	return defaultCat, defaultErr
}
