package services

import (
	"errors"

	"ngo_discovery/models"
	"ngo_discovery/repository"
)

var ErrAlreadyModerated = errors.New("moderation request already resolved")

// ListModerationRequests returns moderation requests, optionally filtered by
// status.
func ListModerationRequests(status string) ([]models.ModerationRequest, error) {
	return repository.ListModerationRequests(status)
}

// ApproveModeration approves a pending request and publishes its organization.
func ApproveModeration(requestID, moderatorID int64, comment string) (*models.ModerationRequest, error) {
	return resolveModeration(requestID, moderatorID, models.ModerationStatusApproved, comment, "")
}

// RejectModeration rejects a pending request with a reason; the organization
// drops out of the public catalog.
func RejectModeration(requestID, moderatorID int64, reason string) (*models.ModerationRequest, error) {
	return resolveModeration(requestID, moderatorID, models.ModerationStatusRejected, "", reason)
}

func resolveModeration(requestID, moderatorID int64, status, comment, reason string) (*models.ModerationRequest, error) {
	request, err := repository.GetModerationRequest(requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != models.ModerationStatusPending {
		return nil, ErrAlreadyModerated
	}

	if err := repository.ResolveModerationRequest(requestID, moderatorID, status, comment, reason); err != nil {
		return nil, err
	}
	return repository.GetModerationRequest(requestID)
}
