// util/validation_util.go

package util

import (
	"fmt"

	"github.com/SAHAYOGESHWARAN/guries-sub010/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateAsset(req model.CreateAssetRequest) error {
	if req.Name == "" {
		return fmt.Errorf("asset name cannot be empty")
	}
	// Add more validation rules as needed
	return nil
}

func (v *ValidationUtil) ValidateQCDecision(req model.QCDecisionRequest) error {
	if req.Action == "" {
		return fmt.Errorf("qc action cannot be empty")
	}
	if req.Score != nil && (*req.Score < 0 || *req.Score > 100) {
		return fmt.Errorf("qc score must be between 0 and 100")
	}
	return nil
}

func (v *ValidationUtil) ValidateLinkRequest(req model.LinkRequest) error {
	if req.AssetID == 0 {
		return fmt.Errorf("asset id cannot be empty")
	}
	if req.ServiceID == 0 && req.SubServiceID == 0 {
		return fmt.Errorf("service id or sub-service id is required")
	}
	return nil
}

func (v *ValidationUtil) ValidateService(service model.Service) error {
	if service.Name == "" {
		return fmt.Errorf("service name cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateSubService(subService model.SubService) error {
	if subService.Name == "" {
		return fmt.Errorf("sub-service name cannot be empty")
	}
	if subService.ServiceID == 0 {
		return fmt.Errorf("sub-service parent service id cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateCountry(country model.Country) error {
	if country.Code == "" {
		return fmt.Errorf("country code cannot be empty")
	}
	if country.Name == "" {
		return fmt.Errorf("country name cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidatePlatform(platform model.Platform) error {
	if platform.Name == "" {
		return fmt.Errorf("platform name cannot be empty")
	}
	return nil
}

// ValidateWeightageConfig enforces that the weight percentages of one
// config sum to exactly 100.
func (v *ValidationUtil) ValidateWeightageConfig(config model.QCWeightageConfig) error {
	if config.Name == "" {
		return fmt.Errorf("weightage config name cannot be empty")
	}
	if sum := config.WeightSum(); sum != 100 {
		return fmt.Errorf("weightage percentages must sum to 100, got %d", sum)
	}
	return nil
}
