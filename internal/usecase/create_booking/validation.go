package create_booking

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CandidateID <= 0 {
		return fmt.Errorf("%w: candidateId must be positive", ErrInvalidInput)
	}

	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotId must be positive", ErrInvalidInput)
	}

	return nil
}
