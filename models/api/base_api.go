package apimodels

type Response struct {
	Success bool        `json:"success"`         //результат обработки
	Error   string      `json:"error,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`  //данные ответа
}

type Pagination struct {
	Total      int64 `json:"total"`       // Всего записей с учетом фильтра
	Page       int   `json:"page"`        // Страница (1,2,3..)
	Limit      int   `json:"limit"`       // Записей на странице
	TotalPages int   `json:"total_pages"` // Всего страниц
}

type ListResponse struct {
	Response
	Pagination Pagination `json:"pagination"`
}

func NewError(message string) Response {
	return Response{
		Success: false,
		Error:   message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func NewListResponse(data interface{}, total int64, page, limit int) ListResponse {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return ListResponse{
		Response: Response{
			Success: true,
			Data:    data,
		},
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}
}

type PageRequest struct {
	Page  int `json:"page" query:"page"`
	Limit int `json:"limit" query:"limit"`
}

func (r PageRequest) GetPage() (page, limit int) {
	page = 1
	limit = 20
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
