package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gorilla/mux"

	"baraholkaCPT/internal/apperr"
	"baraholkaCPT/internal/identity"
	"baraholkaCPT/internal/models"
	"baraholkaCPT/internal/repository"
)

type AdResponse struct {
	Message string         `json:"message"`
	Ad      *models.Ad     `json:"ad"`
	Reward  *models.Reward `json:"reward,omitempty"`
}

// разрешенные форматы картинок
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// singleFormValue достает значение поля формы и отклоняет повторенные поля:
// телефон обязан приходить одной строкой, а не набором значений.
func singleFormValue(r *http.Request, key string) (string, bool, error) {
	if r.MultipartForm == nil {
		return "", false, nil
	}

	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return "", false, nil
	}

	if len(values) > 1 {
		return "", true, apperr.Validation("поле %s должно быть одной строкой, а не массивом", key)
	}

	return values[0], true, nil
}

// imageFromForm возвращает картинку из multipart-формы, если она есть,
// с проверкой типа файла.
func imageFromForm(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, apperr.Validation("не удалось получить файл")
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		file.Close()
		return nil, nil, apperr.Validation("неподдерживаемый тип файла, разрешены: JPEG, PNG, GIF, WebP")
	}

	return file, header, nil
}

func (h *Handlers) parseAdForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		}
		return false
	}
	return true
}

func (h *Handlers) CreateAd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !h.parseAdForm(w, r) {
		return
	}

	userEmail, _, err := singleFormValue(r, "userEmail")
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	userPhone, _, err := singleFormValue(r, "userPhone")
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	req := repository.CreateAdRequest{
		UserEmail: userEmail,
		UserPhone: userPhone,
	}

	// каждое поле приходит одной строкой, повтор - ошибка
	if req.Title, _, err = singleFormValue(r, "title"); err != nil {
		WriteServiceError(w, err)
		return
	}
	if req.Description, _, err = singleFormValue(r, "description"); err != nil {
		WriteServiceError(w, err)
		return
	}
	if req.PriceInr, _, err = singleFormValue(r, "priceInr"); err != nil {
		WriteServiceError(w, err)
		return
	}
	if req.Category, _, err = singleFormValue(r, "category"); err != nil {
		WriteServiceError(w, err)
		return
	}

	if value, ok, err := singleFormValue(r, "showPhone"); err != nil {
		WriteServiceError(w, err)
		return
	} else if ok {
		showPhone := value == "true"
		req.ShowPhone = &showPhone
	}

	file, header, err := imageFromForm(r)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	var fileReader io.Reader
	fileName := ""
	var fileSize int64
	if file != nil {
		defer file.Close()
		fileReader = file
		fileName = header.Filename
		fileSize = header.Size
	}

	ad, err := h.AdService.CreateAd(r.Context(), req, fileName, fileReader, fileSize)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	// награда выдается один раз на объявление и привязана к email владельца.
	// Сбой выдачи не откатывает уже созданное объявление.
	var reward *models.Reward
	if ad.UserEmail != "" {
		reward, err = h.RewardService.Issue(r.Context(), ad.UserEmail, ad.ID, 0)
		if err != nil {
			log.Printf("Внимание: объявление %s создано, но награда не выдана: %v", ad.ID, err)
			reward = nil
		}
	}

	WriteSuccess(w, AdResponse{Message: "Объявление создано", Ad: ad, Reward: reward}, http.StatusCreated)
}

func (h *Handlers) GetActiveAds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	category := r.URL.Query().Get("category")

	ads, err := h.AdService.GetActiveAds(r.Context(), category)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, ads, http.StatusOK)
}

func (h *Handlers) GetUserAds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	caller := identity.Identity{
		Email: r.URL.Query().Get("email"),
		Phone: r.URL.Query().Get("phone"),
	}

	ads, err := h.AdService.GetUserAds(r.Context(), caller)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, ads, http.StatusOK)
}

func (h *Handlers) GetAdDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	adID := mux.Vars(r)["adId"]
	if adID == "" {
		WriteError(w, "Отсутствует ID объявления", http.StatusBadRequest)
		return
	}

	ad, err := h.AdService.GetAdDetail(r.Context(), adID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, ad, http.StatusOK)
}

func (h *Handlers) UpdateAd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !h.parseAdForm(w, r) {
		return
	}

	adID, _, err := singleFormValue(r, "adId")
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	userPhone, _, err := singleFormValue(r, "userPhone")
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	req := repository.UpdateAdRequest{
		AdID:      adID,
		UserPhone: userPhone,
	}

	// непереданные поля остаются как были, повтор поля - ошибка,
	// а не тихий сброс значения
	if value, ok, err := singleFormValue(r, "title"); err != nil {
		WriteServiceError(w, err)
		return
	} else if ok {
		req.Title = &value
	}
	if value, ok, err := singleFormValue(r, "description"); err != nil {
		WriteServiceError(w, err)
		return
	} else if ok {
		req.Description = &value
	}
	if value, ok, err := singleFormValue(r, "priceInr"); err != nil {
		WriteServiceError(w, err)
		return
	} else if ok {
		req.PriceInr = &value
	}
	if value, ok, err := singleFormValue(r, "category"); err != nil {
		WriteServiceError(w, err)
		return
	} else if ok {
		req.Category = &value
	}
	if value, ok, err := singleFormValue(r, "showPhone"); err != nil {
		WriteServiceError(w, err)
		return
	} else if ok {
		showPhone := value == "true"
		req.ShowPhone = &showPhone
	}

	file, header, err := imageFromForm(r)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	var fileReader io.Reader
	fileName := ""
	var fileSize int64
	if file != nil {
		defer file.Close()
		fileReader = file
		fileName = header.Filename
		fileSize = header.Size
	}

	ad, err := h.AdService.UpdateAd(r.Context(), req, fileName, fileReader, fileSize)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, AdResponse{Message: "Объявление обновлено", Ad: ad}, http.StatusOK)
}

func (h *Handlers) DeleteAd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		AdID      string       `json:"adId" validate:"required"`
		UserEmail string       `json:"userEmail"`
		UserPhone models.Phone `json:"userPhone" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteServiceError(w, decodeError(err))
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "ID объявления и телефон обязательны", http.StatusBadRequest)
		return
	}

	caller := identity.Identity{Email: req.UserEmail, Phone: req.UserPhone.String()}

	ad, err := h.AdService.DeleteAd(r.Context(), req.AdID, caller)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, AdResponse{Message: "Объявление удалено", Ad: ad}, http.StatusOK)
}

// decodeError сохраняет категорию ValidationError, если она пришла из
// кастомного разбора (например, телефон массивом), иначе это просто
// неверный формат запроса.
func decodeError(err error) error {
	if errors.Is(err, apperr.ErrValidation) {
		return err
	}
	return apperr.Validation("неверный формат запроса")
}
