package service

import (
	"context"

	"github.com/gabrielleitesep/Drivent4/internal/apperrors"
	"github.com/gabrielleitesep/Drivent4/internal/models"
	"github.com/gabrielleitesep/Drivent4/internal/repository"
)

// checkHotelEligibility verifies the user may use hotel features at all:
// enrolled, with a ticket that is paid, in-person and includes hotel
// accommodation. A missing ticket is forbidden, same as an unpaid one.
func checkHotelEligibility(
	ctx context.Context,
	enrollments *repository.EnrollmentRepository,
	tickets *repository.TicketRepository,
	userID uint,
) error {
	enrollment, err := enrollments.FindWithAddressByUserID(ctx, userID)
	if err != nil {
		return apperrors.Internal("failed to look up enrollment", err)
	}
	if enrollment == nil {
		return apperrors.Forbidden("user is not enrolled")
	}

	ticket, err := tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return apperrors.Internal("failed to look up ticket", err)
	}
	if ticket == nil {
		return apperrors.Forbidden("user has no ticket")
	}
	if ticket.Status == models.TicketStatusReserved || ticket.TicketType.IsRemote || !ticket.TicketType.IncludesHotel {
		return apperrors.Forbidden("ticket does not grant hotel access")
	}
	return nil
}
