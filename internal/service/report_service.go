package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"holiday-reportbot/internal/domain"
	"holiday-reportbot/internal/report"
	"holiday-reportbot/internal/repository"

	"go.uber.org/zap"
)

var (
	// ErrSoldierNotFound 显示名称的学号在 soldier 表里找不到
	ErrSoldierNotFound = errors.New("soldier not found")
	// ErrReportTypeNotFound report_type 缺少种子数据或参数不合法
	ErrReportTypeNotFound = errors.New("report type not found")
)

// Reply 要回给发送者的文字；Text 为空表示不回复
type Reply struct {
	Text string
}

// Empty 是否不需要回复
func (r Reply) Empty() bool {
	return r.Text == ""
}

func replyWith(text string) Reply {
	return Reply{Text: text}
}

// ReportService 回报服务接口
type ReportService interface {
	// HandleMessage 处理一则入站消息并决定回复内容
	HandleMessage(ctx context.Context, ev domain.MessageEvent) Reply
	// Summary 某日某类型某班的汇总文字（管理 API）
	Summary(ctx context.Context, req SummaryRequest) (*SummaryResponse, error)
	// Entries 某日某类型某班的原始记录（汇出用）
	Entries(ctx context.Context, req EntriesRequest) (*EntriesResponse, error)
	// ReportTypes 全部回报类型
	ReportTypes(ctx context.Context) ([]domain.ReportType, error)
}

// ReportServiceOptions 可注入的依赖；零值字段使用默认
type ReportServiceOptions struct {
	Location        *time.Location // 回报时区，默认 time.Local
	SoldierIDPrefix string
	Now             func() time.Time
	Temperatures    *report.TemperatureGenerator
}

type reportService struct {
	store     repository.Store
	loc       *time.Location
	prefix    string
	now       func() time.Time
	temps     *report.TemperatureGenerator
	formatter report.Formatter
	logger    *zap.Logger
}

// NewReportService 创建回报服务
func NewReportService(store repository.Store, opts ReportServiceOptions, logger *zap.Logger) ReportService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Temperatures == nil {
		opts.Temperatures = report.NewTemperatureGenerator(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &reportService{
		store:     store,
		loc:       opts.Location,
		prefix:    opts.SoldierIDPrefix,
		now:       opts.Now,
		temps:     opts.Temperatures,
		formatter: report.Formatter{SoldierIDPrefix: opts.SoldierIDPrefix},
		logger:    logger,
	}
}

func (s *reportService) HandleMessage(ctx context.Context, ev domain.MessageEvent) Reply {
	if !ev.IsText() {
		return Reply{}
	}

	// 名称检查先于内容
	code, err := report.SoldierCode(ev.DisplayName)
	if err != nil {
		return replyWith(report.ReplyWrongUserName)
	}

	parts := report.SplitParts(ev.Text)
	now := s.now().In(s.loc)

	switch report.ClassifyCommand(parts[0]) {
	case report.CommandTemperature:
		return s.handleReport(ctx, ev, code, report.TemperatureReportType(now), parts, now)
	case report.CommandNormal:
		rt := report.NormalReportType(now)
		if rt == domain.ReportTypeNone {
			return replyWith(report.ReplyWrongTime)
		}
		if err := report.CheckPartCount(rt, parts); err != nil {
			return replyWith(report.ReplyContentMismatch)
		}
		return s.handleReport(ctx, ev, code, rt, parts, now)
	default:
		return Reply{}
	}
}

func (s *reportService) handleReport(ctx context.Context, ev domain.MessageEvent, code string, rt domain.ReportTypeID, parts []string, now time.Time) Reply {
	fields, err := report.BuildFields(rt, parts, s.temps)
	if err != nil {
		return replyWith(report.ReplyContentMismatch)
	}

	soldier, err := s.submit(ctx, code, rt, fields, now)
	if err != nil {
		s.logger.Error("Failed to save report",
			zap.String("sender_id", ev.SenderID),
			zap.String("soldier_code", code),
			zap.Stringer("report_type", rt),
			zap.Error(err),
		)
		return replyWith(report.ReplyServerError)
	}

	text, _, err := s.render(ctx, rt, report.StyleFor(rt), now, soldier.ClassNumber)
	if err != nil {
		s.logger.Error("Failed to build report summary",
			zap.Stringer("report_type", rt),
			zap.Int("class_number", soldier.ClassNumber),
			zap.Error(err),
		)
		return replyWith(report.ReplyServerError)
	}
	return replyWith(text)
}

// submit 找到回报人并覆盖写入 (soldier, type) 的记录
func (s *reportService) submit(ctx context.Context, code string, rt domain.ReportTypeID, f report.Fields, now time.Time) (*domain.Soldier, error) {
	soldierID := report.StandardSoldierID(s.prefix, code)
	soldier, err := s.store.GetBySoldierID(ctx, soldierID)
	if err != nil {
		return nil, err
	}
	if soldier == nil {
		return nil, fmt.Errorf("%w: %s", ErrSoldierNotFound, soldierID)
	}

	h := &domain.ReportHistory{
		ReportDate:       dayOf(now),
		ReportTime:       now,
		SoldierPK:        soldier.ID,
		ReportTypeID:     rt,
		Location:         f.Location,
		LocationAfterTen: f.LocationAfterTen,
		BodyTemperature:  f.BodyTemperature,
		Symptom:          f.Symptom,
	}
	if err := s.store.UpsertReport(ctx, h); err != nil {
		return nil, err
	}
	return soldier, nil
}

func (s *reportService) render(ctx context.Context, rt domain.ReportTypeID, style report.Style, date time.Time, classNumber int) (string, int, error) {
	reportType, entries, err := s.load(ctx, rt, date, classNumber)
	if err != nil {
		return "", 0, err
	}
	return s.formatter.Render(style, *reportType, date, entries), len(entries), nil
}

func (s *reportService) load(ctx context.Context, rt domain.ReportTypeID, date time.Time, classNumber int) (*domain.ReportType, []domain.ReportEntry, error) {
	reportType, err := s.store.GetReportType(ctx, rt)
	if err != nil {
		return nil, nil, err
	}
	if reportType == nil {
		return nil, nil, fmt.Errorf("%w: %d", ErrReportTypeNotFound, rt)
	}
	entries, err := s.store.ListReportEntries(ctx, date, rt, classNumber)
	if err != nil {
		return nil, nil, err
	}
	return reportType, entries, nil
}

// SummaryRequest 汇总请求
type SummaryRequest struct {
	ReportTypeID domain.ReportTypeID
	ClassNumber  int
	Date         time.Time // 零值表示今天（回报时区）
	Style        string    // "" | "plain" | "night" | "temperature" | "general"
}

// SummaryResponse 汇总结果
type SummaryResponse struct {
	ReportType domain.ReportType `json:"report_type"`
	Date       string            `json:"date"`
	Count      int               `json:"count"`
	Text       string            `json:"text"`
}

func (s *reportService) Summary(ctx context.Context, req SummaryRequest) (*SummaryResponse, error) {
	if !req.ReportTypeID.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrReportTypeNotFound, req.ReportTypeID)
	}
	style, err := report.ParseStyle(req.Style, req.ReportTypeID)
	if err != nil {
		return nil, err
	}

	date := s.dateOrToday(req.Date)
	reportType, entries, err := s.load(ctx, req.ReportTypeID, date, req.ClassNumber)
	if err != nil {
		return nil, err
	}
	return &SummaryResponse{
		ReportType: *reportType,
		Date:       date.Format("2006-01-02"),
		Count:      len(entries),
		Text:       s.formatter.Render(style, *reportType, date, entries),
	}, nil
}

// EntriesRequest 原始记录请求
type EntriesRequest struct {
	ReportTypeID domain.ReportTypeID
	ClassNumber  int
	Date         time.Time
}

// EntriesResponse 原始记录
type EntriesResponse struct {
	ReportType domain.ReportType
	Date       time.Time
	Items      []domain.ReportEntry
}

func (s *reportService) Entries(ctx context.Context, req EntriesRequest) (*EntriesResponse, error) {
	if !req.ReportTypeID.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrReportTypeNotFound, req.ReportTypeID)
	}
	date := s.dateOrToday(req.Date)
	reportType, entries, err := s.load(ctx, req.ReportTypeID, date, req.ClassNumber)
	if err != nil {
		return nil, err
	}
	return &EntriesResponse{ReportType: *reportType, Date: date, Items: entries}, nil
}

func (s *reportService) ReportTypes(ctx context.Context) ([]domain.ReportType, error) {
	return s.store.ListReportTypes(ctx)
}

// dateOrToday 请求日期只看年月日，按回报时区解释
func (s *reportService) dateOrToday(d time.Time) time.Time {
	if d.IsZero() {
		return dayOf(s.now().In(s.loc))
	}
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, s.loc)
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
