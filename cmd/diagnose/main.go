// diagnose 는 자가진단을 서버 없이 브라우저 밖에서 돌릴 수 있는 CLI 다.
// 응답 파일("아니오" 문항 id 목록)을 읽어 제출하고 결과 요약을 출력한다.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/greenwise-dev/esg_board/pkg/assessment"
	"github.com/greenwise-dev/esg_board/pkg/catalog"
	"github.com/greenwise-dev/esg_board/pkg/esgclient"
	"github.com/greenwise-dev/esg_board/pkg/logger"
)

// Config CLI 설정 구조체
type Config struct {
	Server struct {
		BaseURL string `yaml:"base_url"`
		Token   string `yaml:"token"`
		Timeout int    `yaml:"timeout"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
}

// AnswersFile 응답 파일 형식: "아니오"로 답한 문항 id 목록
type AnswersFile struct {
	Domain string   `yaml:"domain"`
	No     []string `yaml:"no"`
}

// LoadConfig 는 지정 경로에서 설정을 읽는다.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func main() {
	var (
		confPath    = flag.String("conf", "diagnose.yaml", "config path")
		answersPath = flag.String("answers", "answers.yaml", "answers file path")
		submit      = flag.Bool("submit", false, "submit answers instead of dry run")
	)
	flag.Parse()

	cfg, err := LoadConfig(*confPath)
	if err != nil {
		log.Fatalf("설정 파일을 읽을 수 없습니다: %v", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("로그를 초기화할 수 없습니다: %v", err)
	}

	raw, err := os.ReadFile(*answersPath)
	if err != nil {
		logger.Log.Fatalf("응답 파일을 읽을 수 없습니다: %v", err)
	}
	var answers AnswersFile
	if err := yaml.Unmarshal(raw, &answers); err != nil {
		logger.Log.Fatalf("응답 파일 형식 오류: %v", err)
	}

	domain, err := catalog.ParseDomain(answers.Domain)
	if err != nil {
		logger.Log.Fatalf("알 수 없는 진단 영역: %v", err)
	}
	cat, err := catalog.Load(domain)
	if err != nil {
		logger.Log.Fatalf("카탈로그 로드 실패: %v", err)
	}

	client := esgclient.NewClient(cfg.Server.BaseURL, cfg.Server.Token,
		time.Duration(cfg.Server.Timeout)*time.Second)
	session := assessment.NewSession(cat, client.Diagnosis(domain))

	ctx := context.Background()
	session.Load(ctx)

	for _, id := range answers.No {
		if _, ok := cat.Find(id); !ok {
			logger.Log.Warnf("카탈로그에 없는 문항 id 무시: %s", id)
			continue
		}
		session.Sheet.Set(id, assessment.No)
	}

	payload := session.Sheet.NegativeOnly()
	logger.Log.Infof("진단 영역 %s: 문항 %d개, 위반 %d개", domain, session.Sheet.Len(), len(payload))

	if !*submit {
		fmt.Println("dry run: 제출하려면 -submit 을 지정하세요")
		for id := range payload {
			fmt.Printf("  위반: %s\n", id)
		}
		return
	}

	if err := session.Submit(ctx); err != nil {
		logger.Log.Fatalf("제출 실패: %v", err)
	}

	records, stats, err := session.Result(ctx)
	if err != nil {
		logger.Log.Fatalf("결과 조회 실패: %v", err)
	}

	fmt.Printf("위반 %d건 / 과태료 대상 %d건 / 형사처벌 대상 %d건\n",
		stats.Violations, stats.Fines, stats.Criminal)
	for _, r := range records {
		fmt.Printf("  [%s] %s\n      근거: %s / 과태료: %s / 형사처벌: %s\n",
			r.ID, r.QuestionText, r.LegalBasis, r.FineRange, r.CriminalLiability)
	}
}
