// Package response writes JSON, text and PNG HTTP responses and renders
// structured errors as {"code": ..., "message": ...} bodies.
//
//	if err := response.JSON(w, http.StatusOK, result); err != nil {
//		log.Error("write response", logger.Error(err))
//	}
//
//	response.WriteError(w, response.ErrBadRequest.WithMessage("data is required"))
package response
