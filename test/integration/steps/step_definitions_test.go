package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/usecase/bankaccount"
	"github.com/expense-tracker/backend/internal/application/usecase/debt"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/income"
	"github.com/expense-tracker/backend/internal/application/usecase/jar"
	"github.com/expense-tracker/backend/internal/application/usecase/session"
	"github.com/expense-tracker/backend/internal/application/usecase/summary"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/blob"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
	"github.com/expense-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
const testAccessKey = "test-access-key"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	serverPort    int
	sessionToken  string
	lastExpenseID uuid.UUID
	lastDebtID    uuid.UUID
	lastJarID     uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"expenses": &model.ExpenseModel{},
			"debts":    &model.DebtModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Session steps
	ctx.Given(`^I have a valid session token$`, test.iHaveAValidSessionToken)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Data setup steps
	ctx.Given(`^an expense "([^"]*)" of "([^"]*)" in category "([^"]*)" on "([^"]*)" exists$`, test.anExpenseExists)
	ctx.Given(`^a debt "([^"]*)" with total "([^"]*)" and paid "([^"]*)" exists$`, test.aDebtExists)
	ctx.Given(`^the default jar preset is stored$`, test.theDefaultJarPresetIsStored)
	ctx.Given(`^a regular income "([^"]*)" of "([^"]*)" exists$`, test.aRegularIncomeExists)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.sessionToken = ""
	t.lastExpenseID = uuid.Nil
	t.lastDebtID = uuid.Nil
	t.lastJarID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			expenseRepo := persistence.NewExpenseRepository(testDB.DbConn)
			debtRepo := persistence.NewDebtRepository(testDB.DbConn)

			blobStore := blob.NewStore(mock.NewRedis())
			jarRepo := blob.NewJarRepository(blobStore)
			incomeRepo := blob.NewIncomeRepository(blobStore)
			accountRepo := blob.NewBankAccountRepository(blobStore)

			accessKeyService := adapters.NewAccessKeyService()
			tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)

			accessKeyHash, err := bcrypt.GenerateFromPassword([]byte(testAccessKey), bcrypt.MinCost)
			if err != nil {
				panic(err)
			}

			createSessionUseCase := session.NewCreateSessionUseCase(string(accessKeyHash), accessKeyService, tokenService)

			listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
			createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
			updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
			deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

			listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
			createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo)
			updateDebtUseCase := debt.NewUpdateDebtUseCase(debtRepo)
			deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)
			applyPaymentUseCase := debt.NewApplyPaymentUseCase(debtRepo)
			getPortfolioUseCase := debt.NewGetPortfolioUseCase(debtRepo)

			listJarsUseCase := jar.NewListJarsUseCase(jarRepo)
			replaceJarsUseCase := jar.NewReplaceJarsUseCase(jarRepo)
			applyPresetUseCase := jar.NewApplyDefaultPresetUseCase(jarRepo)
			getAllocationUseCase := jar.NewGetAllocationUseCase(jarRepo, incomeRepo)

			listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
			replaceIncomesUseCase := income.NewReplaceIncomesUseCase(incomeRepo)

			listAccountsUseCase := bankaccount.NewListAccountsUseCase(accountRepo)
			replaceAccountsUseCase := bankaccount.NewReplaceAccountsUseCase(accountRepo)

			getMonthlySummaryUseCase := summary.NewGetMonthlySummaryUseCase(expenseRepo)
			getBreakdownUseCase := summary.NewGetCategoryBreakdownUseCase(expenseRepo)

			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return true },
			)
			sessionController := controller.NewSessionController(createSessionUseCase)
			expenseController := controller.NewExpenseController(
				listExpensesUseCase,
				createExpenseUseCase,
				updateExpenseUseCase,
				deleteExpenseUseCase,
			)
			debtController := controller.NewDebtController(
				listDebtsUseCase,
				createDebtUseCase,
				updateDebtUseCase,
				deleteDebtUseCase,
				applyPaymentUseCase,
				getPortfolioUseCase,
			)
			jarController := controller.NewJarController(
				listJarsUseCase,
				replaceJarsUseCase,
				applyPresetUseCase,
				getAllocationUseCase,
			)
			incomeController := controller.NewIncomeController(listIncomesUseCase, replaceIncomesUseCase)
			bankAccountController := controller.NewBankAccountController(listAccountsUseCase, replaceAccountsUseCase)
			summaryController := controller.NewSummaryController(getMonthlySummaryUseCase, getBreakdownUseCase)

			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				sessionController,
				expenseController,
				debtController,
				jarController,
				incomeController,
				bankAccountController,
				summaryController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) iHaveAValidSessionToken() error {
	tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)
	token, err := tokenService.GenerateSessionToken()
	if err != nil {
		return fmt.Errorf("failed to generate session token: %w", err)
	}
	t.sessionToken = token
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.sessionToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) anExpenseExists(name, amount, categoryID, dateStr string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	expenseID := uuid.New()
	t.lastExpenseID = expenseID

	now := time.Now().UTC()
	expenseModel := &model.ExpenseModel{
		ID:         expenseID,
		Name:       name,
		Amount:     value,
		CategoryID: categoryID,
		Date:       date,
		Color:      string(entity.DefaultColor),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return t.db.DbConn.Create(expenseModel).Error
}

func (t *testContext) aDebtExists(name, total, paid string) error {
	totalAmount, err := decimal.NewFromString(total)
	if err != nil {
		return fmt.Errorf("invalid total %q: %w", total, err)
	}

	paidAmount, err := decimal.NewFromString(paid)
	if err != nil {
		return fmt.Errorf("invalid paid %q: %w", paid, err)
	}

	debtID := uuid.New()
	t.lastDebtID = debtID

	now := time.Now().UTC()
	debtModel := &model.DebtModel{
		ID:          debtID,
		Name:        name,
		Icon:        "💳",
		TotalAmount: totalAmount,
		PaidAmount:  paidAmount,
		Color:       string(entity.DefaultColor),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(debtModel).Error
}

func (t *testContext) theDefaultJarPresetIsStored() error {
	jarRepo := blob.NewJarRepository(blob.NewStore(mock.NewRedis()))

	jars := entity.DefaultJarPreset()
	if err := jarRepo.Replace(context.TODO(), jars); err != nil {
		return err
	}

	t.lastJarID = jars[0].ID
	return nil
}

func (t *testContext) aRegularIncomeExists(name, amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	incomeRepo := blob.NewIncomeRepository(blob.NewStore(mock.NewRedis()))

	incomes, err := incomeRepo.List(context.TODO())
	if err != nil {
		return err
	}

	incomes = append(incomes, entity.NewIncome(name, value, entity.IncomeTypeRegular, time.Now().UTC()))
	return incomeRepo.Replace(context.TODO(), incomes)
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{session_token}}", t.sessionToken)
	content = strings.ReplaceAll(content, "{{access_key}}", testAccessKey)
	content = strings.ReplaceAll(content, "{{expense_id}}", t.lastExpenseID.String())
	content = strings.ReplaceAll(content, "{{debt_id}}", t.lastDebtID.String())
	content = strings.ReplaceAll(content, "{{jar_id}}", t.lastJarID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.sessionToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture the session token so later requests can authenticate.
	if token, ok := responseBody["token"].(string); ok && token != "" {
		t.sessionToken = token
	}

	// Capture the ID of an entity echoed back by a mutation.
	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastExpenseID = id
			t.lastDebtID = id
		}
	}
	if nested, ok := responseBody["expense"].(map[string]any); ok {
		if idStr, ok := nested["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastExpenseID = id
			}
		}
	}
	if nested, ok := responseBody["debt"].(map[string]any); ok {
		if idStr, ok := nested["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastDebtID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entityModel, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entityModel).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entityModel, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entityModel).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
