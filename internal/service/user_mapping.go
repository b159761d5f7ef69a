package service

import (
	"sort"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/courseboard/internal/apperror"
	"github.com/lshigami/courseboard/internal/dto"
	"github.com/lshigami/courseboard/internal/model"
	"github.com/rs/zerolog/log"
)

func toUserResponse(user *model.User) dto.UserResponse {
	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		log.Warn().Err(err).Str("username", user.Username).Msg("Failed to copy user to response")
	}
	resp.Role = string(user.Role)
	return resp
}

// validateUser requires all five fields and a known role.
func validateUser(req dto.UserUpsertRequest) (*model.User, error) {
	var fields []string
	for name, v := range map[string]string{
		"username":   req.Username,
		"name":       req.Name,
		"password":   req.Password,
		"department": req.Department,
		"role":       req.Role,
	} {
		if strings.TrimSpace(v) == "" {
			fields = append(fields, name)
		}
	}
	role := model.Role(strings.ToLower(strings.TrimSpace(req.Role)))
	if req.Role != "" && !role.Valid() {
		fields = append(fields, "role")
	}
	if len(fields) > 0 {
		sort.Strings(fields)
		return nil, apperror.NewValidation("Please fill all fields", fields...)
	}
	return &model.User{
		Username:   strings.TrimSpace(req.Username),
		Name:       strings.TrimSpace(req.Name),
		Password:   req.Password,
		Department: strings.TrimSpace(req.Department),
		Role:       role,
	}, nil
}
