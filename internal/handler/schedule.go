// Package handler 提供HTTP请求处理器
package handler

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/wardroster/wardroster/internal/config"
	"github.com/wardroster/wardroster/internal/metrics"
	"github.com/wardroster/wardroster/pkg/errors"
	"github.com/wardroster/wardroster/pkg/model"
	"github.com/wardroster/wardroster/pkg/scheduler/generator"
	"github.com/wardroster/wardroster/pkg/scheduler/score"
)

// ScheduleHandler 排班处理器
type ScheduleHandler struct {
	gen      *generator.Generator
	engine   config.EngineConfig
	validate *validator.Validate
}

// NewScheduleHandler 创建排班处理器
func NewScheduleHandler(engine config.EngineConfig) *ScheduleHandler {
	return &ScheduleHandler{
		gen:      generator.New(),
		engine:   engine,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// GenerateRequest 排班生成请求
type GenerateRequest struct {
	StartDate string                 `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string                 `json:"end_date" validate:"required,datetime=2006-01-02"`
	Nurses    []NurseInput           `json:"nurses" validate:"dive"`
	Rules     *model.SchedulingRules `json:"rules,omitempty"`
	Options   *OptionsInput          `json:"options,omitempty"`
}

// NurseInput 护士输入
type NurseInput struct {
	ID                   string            `json:"id" validate:"required"`
	Name                 string            `json:"name" validate:"required"`
	SeniorityLevel       int               `json:"seniority_level" validate:"gte=0,lte=10"`
	ShiftTypes           []string          `json:"shift_types" validate:"required,min=1,dive,oneof=DAY NIGHT"`
	MaxShiftsPerBlock    int               `json:"max_shifts_per_block" validate:"gte=0"`
	ContractHoursPerWeek int               `json:"contract_hours_per_week,omitempty" validate:"gte=0"`
	Preferences          *PreferencesInput `json:"preferences,omitempty"`
}

// PreferencesInput 护士偏好输入
type PreferencesInput struct {
	PreferredShifts    map[string]string `json:"preferred_shifts,omitempty" validate:"dive,oneof=DAY NIGHT ANY"`
	PTORequests        []string          `json:"pto_requests,omitempty" validate:"dive,datetime=2006-01-02"`
	NoScheduleRequests []string          `json:"no_schedule_requests,omitempty" validate:"dive,datetime=2006-01-02"`
	FlexibilityScore   float64           `json:"flexibility_score,omitempty" validate:"gte=0,lte=10"`
}

// OptionsInput 生成选项输入
type OptionsInput struct {
	MaxSchedules  int    `json:"max_schedules,omitempty" validate:"gte=0,lte=10"`
	MaxIterations int    `json:"max_iterations,omitempty" validate:"gte=0,lte=100000"`
	Strategy      string `json:"strategy,omitempty" validate:"omitempty,oneof=balanced coverage preferences fairness"`
	Seed          int64  `json:"seed,omitempty"`
	Timeout       int    `json:"timeout_seconds,omitempty" validate:"gte=0,lte=300"`
}

// GenerateResponse 排班生成响应
type GenerateResponse struct {
	Success   bool                       `json:"success"`
	Schedules []*model.GeneratedSchedule `json:"schedules"`
	Duration  string                     `json:"duration"`
}

// Generate 生成排班
func (h *ScheduleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST方法"))
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "解析请求失败"))
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		respondError(w, toValidationError(err))
		return
	}

	genReq := &generator.Request{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Nurses:    mapNurses(req.Nurses),
		Rules:     req.Rules,
	}

	opts := generator.DefaultOptions()
	opts.MaxSchedules = h.engine.MaxSchedules
	opts.MaxIterations = h.engine.MaxIterations
	opts.Workers = h.engine.Workers

	timeout := h.engine.DefaultTimeout
	if req.Options != nil {
		if req.Options.MaxSchedules > 0 {
			opts.MaxSchedules = req.Options.MaxSchedules
		}
		if req.Options.MaxIterations > 0 {
			opts.MaxIterations = req.Options.MaxIterations
		}
		if req.Options.Strategy != "" {
			opts.Strategy = score.Strategy(req.Options.Strategy)
		}
		opts.Seed = req.Options.Seed
		if req.Options.Timeout > 0 {
			timeout = time.Duration(req.Options.Timeout) * time.Second
		}
	}

	genCtx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	start := time.Now()
	schedules, err := h.gen.Generate(genCtx, genReq, opts)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordGeneration(string(opts.Strategy), false, duration)
		if stderrors.Is(err, context.DeadlineExceeded) {
			respondError(w, errors.New(errors.CodeTimeout, "排班计算超时，请减少护士数量或缩短排班周期"))
			return
		}
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			respondError(w, appErr)
			return
		}
		respondError(w, errors.Wrap(err, errors.CodeInternal, "排班失败"))
		return
	}

	// 被丢弃的尝试数等于请求方案数与实际产出的差
	if len(req.Nurses) > 0 {
		for i := len(schedules); i < opts.MaxSchedules; i++ {
			metrics.RecordAttemptInfeasible()
		}
	}

	if len(schedules) == 0 && len(req.Nurses) > 0 {
		metrics.RecordGeneration(string(opts.Strategy), false, duration)
		respondError(w, errors.NoFeasibleSolution("所有尝试均无法满足硬约束"))
		return
	}

	metrics.RecordGeneration(string(opts.Strategy), true, duration)
	if len(schedules) > 0 {
		metrics.SetBestScore(string(opts.Strategy), schedules[0].OptimizationScore)
		if schedules[0].Statistics != nil {
			metrics.SetCoverageRate(string(opts.Strategy), schedules[0].Statistics.CoverageMetrics.CoverageRate)
		}
	}

	respondJSON(w, http.StatusOK, GenerateResponse{
		Success:   true,
		Schedules: schedules,
		Duration:  duration.String(),
	})
}

// mapNurses 将请求输入转换为领域模型
func mapNurses(inputs []NurseInput) []*model.Nurse {
	nurses := make([]*model.Nurse, 0, len(inputs))
	for _, in := range inputs {
		shiftTypes := make([]model.ShiftType, 0, len(in.ShiftTypes))
		for _, t := range in.ShiftTypes {
			shiftTypes = append(shiftTypes, model.ShiftType(t))
		}

		n := &model.Nurse{
			ID:                   in.ID,
			Name:                 in.Name,
			SeniorityLevel:       in.SeniorityLevel,
			ShiftTypes:           shiftTypes,
			MaxShiftsPerBlock:    in.MaxShiftsPerBlock,
			ContractHoursPerWeek: in.ContractHoursPerWeek,
		}
		if in.Preferences != nil {
			preferred := make(map[string]model.ShiftType, len(in.Preferences.PreferredShifts))
			for date, t := range in.Preferences.PreferredShifts {
				preferred[date] = model.ShiftType(t)
			}
			n.Preferences = &model.NursePreferences{
				PreferredShifts:    preferred,
				PTORequests:        in.Preferences.PTORequests,
				NoScheduleRequests: in.Preferences.NoScheduleRequests,
				FlexibilityScore:   in.Preferences.FlexibilityScore,
			}
		}
		nurses = append(nurses, n)
	}
	return nurses
}

// toValidationError 将validator错误转换为应用错误
func toValidationError(err error) *errors.AppError {
	ve := &errors.ValidationErrors{}

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			ve.Add(fe.Namespace(), "校验失败: "+fe.Tag())
		}
	} else {
		ve.Add("request", err.Error())
	}

	return ve.ToAppError()
}

// respondJSON 返回JSON响应
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError 返回错误响应
func respondError(w http.ResponseWriter, err *errors.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.HTTPStatus)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"code":    err.Code,
		"message": err.Message,
		"details": err.Details,
	})
}
