package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-category/api/http/presenter"
	"github.com/artem13815/resume-category/pkg/resume"
)

var errTooLarge = errors.New("file too large")

type ResumeHandler struct {
	svc resume.ClassificationService
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(svc resume.ClassificationService, maxBytes int64) *ResumeHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	return &ResumeHandler{svc: svc, maxBytes: maxBytes}
}

// ClassifyResponse is returned by both classify endpoints.
type ClassifyResponse struct {
	RequestID      string `json:"requestId"`
	Filename       string `json:"filename,omitempty"`
	Extension      string `json:"extension,omitempty"`
	Category       string `json:"category"`
	CategoryID     int    `json:"categoryId"`
	Known          bool   `json:"known"`
	Fragments      int    `json:"fragments,omitempty"`
	CharsExtracted int    `json:"charsExtracted"`
	Text           string `json:"text,omitempty"`
}

type classifyTextRequest struct {
	Text string `json:"text"`
}

// Classify принимает файл резюме (PDF/DOCX/TXT), извлекает текст и
// возвращает предсказанную категорию.
// @Summary Predict the job category of a résumé file
// @Description Extracts text from a PDF, DOCX or TXT file, cleans it and classifies it into one of 25 categories. Unsupported formats and blank files are reported as empty content.
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   file     formData file true  "Résumé file (pdf, docx or txt)"
// @Param   showText query    bool false "Include the extracted text in the response"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} presenter.ErrorResponse "Missing or unreadable upload"
// @Failure 413 {object} presenter.ErrorResponse "File too large"
// @Failure 422 {object} presenter.ErrorResponse "Empty or unreadable content"
// @Router  /resume/classify [post]
func (h *ResumeHandler) Classify(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, presenter.CodeBadRequest, "file is required (pdf, docx or txt)")
	}
	if fh.Size > h.maxBytes {
		return presenter.Error(c, http.StatusRequestEntityTooLarge, presenter.CodeTooLarge, fmt.Sprintf("file too large: limit is %d bytes", h.maxBytes))
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, presenter.CodeBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		if errors.Is(err, errTooLarge) {
			return presenter.Error(c, http.StatusRequestEntityTooLarge, presenter.CodeTooLarge, err.Error())
		}
		return presenter.Error(c, http.StatusBadRequest, presenter.CodeBadRequest, err.Error())
	}
	res, err := h.svc.Classify(c.UserContext(), resume.Document{Filename: fh.Filename, Data: data})
	if err != nil {
		return classifyError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toResponse(c, res, c.QueryBool("showText")))
}

// ClassifyText classifies résumé text sent as JSON.
// @Summary Predict the job category of résumé text
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   input body classifyTextRequest true "text payload"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse "Blank text"
// @Router  /resume/classify/text [post]
func (h *ResumeHandler) ClassifyText(c *fiber.Ctx) error {
	var req classifyTextRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, presenter.CodeBadRequest, "invalid JSON payload")
	}
	res, err := h.svc.ClassifyText(c.UserContext(), req.Text)
	if err != nil {
		return classifyError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toResponse(c, res, false))
}

func classifyError(c *fiber.Ctx, err error) error {
	if errors.Is(err, resume.ErrEmptyContent) {
		return presenter.Error(c, http.StatusUnprocessableEntity, presenter.CodeEmptyContent, err.Error())
	}
	return presenter.Error(c, http.StatusInternalServerError, presenter.CodeInternal, "classification failed")
}

func toResponse(c *fiber.Ctx, res resume.Result, showText bool) ClassifyResponse {
	rid, _ := c.Locals("requestid").(string)
	out := ClassifyResponse{
		RequestID:      rid,
		Filename:       res.Filename,
		Extension:      res.Extension,
		Category:       res.Prediction.Label,
		CategoryID:     res.Prediction.ID,
		Known:          res.Prediction.Known(),
		Fragments:      res.Fragments,
		CharsExtracted: res.CharsExtracted,
	}
	if showText {
		out.Text = res.Text
	}
	return out
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("%w: limit is %d bytes", errTooLarge, max)
	}
	return b, nil
}
