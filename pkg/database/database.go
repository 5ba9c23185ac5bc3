package database

import (
	"fmt"
	"log"

	"cs_sprint_backend/internal/config"
	"cs_sprint_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		dialector = mysql.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedContent(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.SessionRun{},
		&model.QuizQuestion{},
		&model.ApplyTask{},
		&model.QuizAttempt{},
		&model.ApplyAttempt{},
		&model.Reflection{},
		&model.CategoryScore{},
		&model.DiagnosticAttempt{},
		&model.Subscription{},
		&model.FeedPost{},
		&model.FeedComment{},
		&model.Reaction{},
		&model.Report{},
		&model.ModerationAction{},
		&model.ShareLink{},
		&model.ModuleVersion{},
	)
}

// seedContent inserts default users, quiz questions and apply tasks the
// first time the service starts against an empty schema.
func seedContent(db *gorm.DB) error {
	var uCount int64
	db.Model(&model.User{}).Count(&uCount)
	if uCount == 0 {
		defaults := []model.User{
			{Name: "김서연", Email: "seoyeon.kim@example.com", Handle: "seoyeon", Role: model.Member},
			{Name: "이준호", Email: "junho.lee@example.com", Handle: "junho", Role: model.Member},
			{Name: "박민지", Email: "minji.park@example.com", Handle: "minji", Role: model.Member},
			{Name: "최다은", Email: "daeun.choi@example.com", Handle: "daeun", Role: model.Member},
			{Name: "정우진", Email: "woojin.jung@example.com", Handle: "woojin", Role: model.Admin},
		}
		for i := range defaults {
			if err := db.Create(&defaults[i]).Error; err != nil {
				return err
			}
		}
	}

	var qCount int64
	db.Model(&model.QuizQuestion{}).Count(&qCount)
	if qCount == 0 {
		defaults := []model.QuizQuestion{
			{
				ModuleID: "tcp-handshake",
				Type:     model.MultipleChoice,
				Prompt:   "TCP 연결 수립에서 두 번째로 전송되는 세그먼트는?",
				Options:  `["SYN","SYN-ACK","ACK","FIN"]`,
				Answer:   "SYN-ACK",
				Category: "networking",
			},
			{
				ModuleID: "tcp-handshake",
				Type:     model.TrueFalse,
				Prompt:   "3-way handshake는 데이터 전송 전에 완료되어야 한다.",
				Options:  `["true","false"]`,
				Answer:   "true",
				Category: "networking",
			},
			{
				ModuleID: "branching-basics",
				Type:     model.FillInBlank,
				Prompt:   "브랜치는 특정 커밋을 가리키는 이동 가능한 ____ 이다.",
				Answer:   "포인터",
				Category: "version-control",
			},
			{
				ModuleID: "race-and-locks",
				Type:     model.MultipleChoice,
				Prompt:   "임계 구역 보호에 가장 직접적으로 쓰이는 동기화 도구는?",
				Options:  `["뮤텍스","캐시","파이프","시그널"]`,
				Answer:   "뮤텍스",
				Category: "concurrency",
			},
			{
				ModuleID: "process-vs-thread",
				Type:     model.TrueFalse,
				Prompt:   "같은 프로세스의 스레드들은 힙 메모리를 공유한다.",
				Options:  `["true","false"]`,
				Answer:   "true",
				Category: "os-basics",
			},
			{
				ModuleID: "hash-table-internals",
				Type:     model.MultipleChoice,
				Prompt:   "해시 충돌을 연결 리스트로 처리하는 전략은?",
				Options:  `["개방 주소법","체이닝","이중 해싱","선형 탐사"]`,
				Answer:   "체이닝",
				Category: "data-structures",
			},
			// Diagnostic set: one question per category.
			{Type: model.TrueFalse, Prompt: "UDP는 전송 순서를 보장한다.", Options: `["true","false"]`, Answer: "false", Category: "networking", Diagnostic: true},
			{Type: model.TrueFalse, Prompt: "데드락은 상호 배제 없이도 발생할 수 있다.", Options: `["true","false"]`, Answer: "false", Category: "concurrency", Diagnostic: true},
			{Type: model.TrueFalse, Prompt: "커밋은 불변 스냅샷이다.", Options: `["true","false"]`, Answer: "true", Category: "version-control", Diagnostic: true},
			{Type: model.TrueFalse, Prompt: "가상 메모리는 물리 메모리보다 클 수 있다.", Options: `["true","false"]`, Answer: "true", Category: "os-basics", Diagnostic: true},
			{Type: model.TrueFalse, Prompt: "배열의 임의 접근은 O(1)이다.", Options: `["true","false"]`, Answer: "true", Category: "data-structures", Diagnostic: true},
		}
		for i := range defaults {
			if err := db.Create(&defaults[i]).Error; err != nil {
				return err
			}
		}
	}

	var tCount int64
	db.Model(&model.ApplyTask{}).Count(&tCount)
	if tCount == 0 {
		defaults := []model.ApplyTask{
			{ModuleID: "tcp-handshake", Title: "핸드셰이크 추적", Instructions: "주어진 패킷 캡처에서 3-way handshake 구간의 세그먼트 순서를 적으세요.", Answer: "SYN,SYN-ACK,ACK"},
			{ModuleID: "branching-basics", Title: "브랜치 시나리오", Instructions: "feature 브랜치를 만들고 main에 합치는 명령 순서를 적으세요.", Answer: "checkout -b,commit,merge"},
			{ModuleID: "process-vs-thread", Title: "메모리 배치", Instructions: "두 스레드가 공유하는 영역과 분리된 영역을 구분해 적으세요.", Answer: "heap 공유,stack 분리"},
			{ModuleID: "race-and-locks", Title: "레이스 찾기", Instructions: "예시 코드에서 보호되지 않은 공유 변수 접근 줄 번호를 적으세요.", Answer: "7,12"},
			{ModuleID: "hash-table-internals", Title: "버킷 계산", Instructions: "키 42가 크기 8 테이블에서 들어가는 버킷 번호를 적으세요.", Answer: "2"},
			{ModuleID: "dns-journey", Title: "질의 순서", Instructions: "루트, TLD, 권한 서버의 질의 순서를 적으세요.", Answer: "root,tld,authoritative"},
		}
		for i := range defaults {
			if err := db.Create(&defaults[i]).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
