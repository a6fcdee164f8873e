package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/mitchellh/mapstructure"

	"github.com/datagrid/datagrid-apis/grid"
	e "github.com/datagrid/datagrid-apis/rest/errors"
	m "github.com/datagrid/datagrid-apis/rest/models"
	"github.com/datagrid/datagrid-apis/search"
	"github.com/datagrid/datagrid-apis/table"
)

const defaultSearchLimit = 10

var (
	inputValidator *validator.Validate
	trans          ut.Translator
)

func init() {
	inputValidator = validator.New()

	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	_ = enTranslations.RegisterDefaultTranslations(inputValidator, trans)

	_ = inputValidator.RegisterTranslation("required", trans, func(ut ut.Translator) error {
		return ut.Add("required", "{0} is a required field", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		translator, _ := ut.T("required", fe.Field())
		return translator
	})
}

func (s *routeList) GetTables(w http.ResponseWriter, r *http.Request) {
	tables, err := s.service.Tables(r.Context())
	if err != nil {
		s.logger.Error("unable to list tables", "error", err)
		RespondWithError(w, errors.New("unable to list tables"), http.StatusInternalServerError)
		return
	}

	RespondJSONObjectWithCode(w, http.StatusOK, m.TablesResponse{Tables: tables})
}

func (s *routeList) GetRows(w http.ResponseWriter, r *http.Request) {
	tableName := s.params(r, "tableName")

	var query m.RowsQuery
	if err := parseAndValidateQuery(&query, r.URL.Query()); err != nil {
		RespondWithError(w, err, http.StatusBadRequest)
		return
	}

	state, err := s.queryState(query.Page, query.PageSize, query.OrderBy, query.SortOrder)
	if err != nil {
		RespondWithError(w, err, http.StatusBadRequest)
		return
	}

	result, err := s.service.Rows(r.Context(), tableName, state)
	if err != nil {
		s.respondWithServiceError(w, "unable to fetch rows", tableName, err)
		return
	}

	RespondJSONObjectWithCode(w, http.StatusOK, result)
}

func (s *routeList) PostView(w http.ResponseWriter, r *http.Request) {
	tableName := s.params(r, "tableName")

	var request m.ViewRequest
	if err := parseAndValidatePayload(&request, r); err != nil {
		RespondWithError(w, err, http.StatusBadRequest)
		return
	}

	state, err := s.queryState(request.State.Page, request.State.PageSize, request.State.OrderBy, request.State.SortOrder)
	if err != nil {
		RespondWithError(w, err, http.StatusBadRequest)
		return
	}

	action := grid.Action{
		Type:     grid.ActionType(request.Action.Type),
		Page:     request.Action.Page,
		PageSize: request.Action.PageSize,
		Column:   request.Action.Column,
	}

	result, err := s.service.Apply(r.Context(), tableName, state, action)
	if err != nil {
		s.respondWithServiceError(w, "unable to apply table action", tableName, err)
		return
	}

	RespondJSONObjectWithCode(w, http.StatusOK, result)
}

func (s *routeList) Search(w http.ResponseWriter, r *http.Request) {
	tableName := s.params(r, "tableName")

	var query m.SearchQuery
	if err := parseAndValidateQuery(&query, r.URL.Query()); err != nil {
		RespondWithError(w, err, http.StatusBadRequest)
		return
	}

	if query.Query == "" {
		RespondJSONObjectWithCode(w, http.StatusOK, m.SearchResponse{Options: []search.Option{}})
		return
	}

	limit := query.Limit
	if limit == 0 {
		limit = defaultSearchLimit
	}

	// One extra option tells whether there is more to load.
	options, err := s.service.Search(r.Context(), tableName, query.Column, query.Query, limit+1)
	if err != nil {
		s.respondWithServiceError(w, "unable to search", tableName, err)
		return
	}

	response := m.SearchResponse{
		Options: options,
		HasMore: search.HasMore(len(options), limit),
	}
	if response.HasMore {
		response.Options = options[:limit]
	}

	RespondJSONObjectWithCode(w, http.StatusOK, response)
}

// queryState fills the blanks of a request with the configured defaults.
func (s *routeList) queryState(page, pageSize int, orderBy, sortOrder string) (table.QueryState, error) {
	order, err := table.ParseSortOrder(sortOrder)
	if err != nil {
		return table.QueryState{}, err
	}

	state := table.NewQueryState(s.cfg.PageSizes(), orderBy, order)
	state.Page = page
	if pageSize > 0 {
		state.PageSize = pageSize
	}
	return state, nil
}

func (s *routeList) respondWithServiceError(w http.ResponseWriter, msg string, tableName string, err error) {
	code := statusFor(err)
	if code != http.StatusInternalServerError {
		RespondWithError(w, err, code)
		return
	}

	s.logger.Error(msg,
		"table", tableName,
		"error", err)
	RespondWithError(w, errors.New(msg), code)
}

func parseAndValidatePayload(payload interface{}, r *http.Request) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}

	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return fmt.Errorf("unable to parse payload: %v", err)
	}

	if err := inputValidator.Struct(payload); err != nil {
		return e.TranslateValidatorError(err, trans)
	}

	return nil
}

// parseAndValidateQuery decodes single valued query string parameters into target using its
// mapstructure tags.
func parseAndValidateQuery(target interface{}, values url.Values) error {
	input := make(map[string]interface{}, len(values))
	for key := range values {
		input[key] = values.Get(key)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("invalid query parameters: %v", err)
	}

	if err := inputValidator.Struct(target); err != nil {
		return e.TranslateValidatorError(err, trans)
	}

	return nil
}
