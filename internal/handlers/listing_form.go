package handlers

import (
	"errors"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/josfem004/cl-clone/internal/models"
	"github.com/josfem004/cl-clone/internal/services"
)

// maxUploadSize bounds the size of a listing form including its photo.
const maxUploadSize = 10 << 20

// listingFormEcho is the submitted listing form as echoed back on errors.
type listingFormEcho struct {
	City        string `json:"city"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// parseListingForm reads a multipart or urlencoded listing form. The
// returned file, if any, must be closed by the caller.
func parseListingForm(w http.ResponseWriter, r *http.Request) (models.ListingForm, listingFormEcho, multipart.File, error) {
	var form models.ListingForm

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			return form, listingFormEcho{}, nil, fieldError("form", "invalid multipart form")
		}
	} else if err := r.ParseForm(); err != nil {
		return form, listingFormEcho{}, nil, fieldError("form", "invalid form")
	}

	echo := listingFormEcho{
		City:        r.PostFormValue("city"),
		Title:       r.PostFormValue("title"),
		Price:       r.PostFormValue("price"),
		Description: r.PostFormValue("description"),
	}
	form.Title = echo.Title
	form.Description = echo.Description

	verr := &services.ValidationError{Fields: map[string]string{}}

	if echo.City == "" {
		verr.Fields["city"] = "This field is required."
	} else if cityID, err := strconv.ParseInt(echo.City, 10, 64); err != nil {
		verr.Fields["city"] = "Select a valid choice. That choice is not one of the available choices."
	} else {
		form.CityID = cityID
	}

	if echo.Price == "" {
		verr.Fields["price"] = "This field is required."
	} else if price, err := strconv.ParseFloat(strings.TrimSpace(echo.Price), 64); err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		verr.Fields["price"] = "Enter a number."
	} else {
		form.Price = price
	}

	if len(verr.Fields) > 0 {
		return form, echo, nil, verr
	}

	file, header, err := r.FormFile("photo")
	switch {
	case err == nil:
		form.Photo = &models.Upload{Filename: header.Filename, Content: file}
		return form, echo, file, nil
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return form, echo, nil, nil
	default:
		return form, echo, nil, fieldError("photo", "invalid file")
	}
}

func fieldError(field, msg string) *services.ValidationError {
	return &services.ValidationError{Fields: map[string]string{field: msg}}
}
