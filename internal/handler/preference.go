// Package handler 提供HTTP请求处理器
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/wardroster/wardroster/pkg/errors"
	"github.com/wardroster/wardroster/pkg/model"
	"github.com/wardroster/wardroster/pkg/scheduler/rulecheck"
)

// PreferenceHandler 偏好校验处理器
type PreferenceHandler struct {
	validate *validator.Validate
}

// NewPreferenceHandler 创建偏好校验处理器
func NewPreferenceHandler() *PreferenceHandler {
	return &PreferenceHandler{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidatePreferencesRequest 偏好校验请求
type ValidatePreferencesRequest struct {
	StartDate   string                 `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string                 `json:"end_date" validate:"required,datetime=2006-01-02"`
	Preferences []DayPreferenceInput   `json:"preferences" validate:"dive"`
	Rules       *model.SchedulingRules `json:"rules,omitempty"`
}

// DayPreferenceInput 单日偏好输入
type DayPreferenceInput struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Type      string `json:"type" validate:"required,oneof=WORK PTO NO_SCHEDULE"`
	ShiftType string `json:"shift_type,omitempty" validate:"omitempty,oneof=DAY NIGHT ANY"`
}

// ValidatePreferencesResponse 偏好校验响应
type ValidatePreferencesResponse struct {
	Valid        bool     `json:"valid"`
	Errors       []string `json:"errors"`
	Warnings     []string `json:"warnings"`
	Requirements []string `json:"requirements"`
}

// Validate 校验护士偏好是否符合排班规则
func (h *PreferenceHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST方法"))
		return
	}

	var req ValidatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "解析请求失败"))
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		respondError(w, toValidationError(err))
		return
	}

	rules := req.Rules
	if rules == nil {
		rules = model.DefaultRules()
	}

	preferences := make([]rulecheck.DayPreference, 0, len(req.Preferences))
	for _, p := range req.Preferences {
		preferences = append(preferences, rulecheck.DayPreference{
			Date:      p.Date,
			Type:      rulecheck.PreferenceType(p.Type),
			ShiftType: model.ShiftType(p.ShiftType),
		})
	}

	result := rulecheck.ValidatePreferences(preferences, rules, req.StartDate, req.EndDate)

	respondJSON(w, http.StatusOK, ValidatePreferencesResponse{
		Valid:        result.Valid,
		Errors:       result.Errors,
		Warnings:     result.Warnings,
		Requirements: rulecheck.RequirementsSummary(rules),
	})
}
