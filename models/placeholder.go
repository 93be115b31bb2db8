package models

import (
	"time"

	"github.com/LigeronAhill/nextjs-dashboard/constants"
)

// FixtureSet là bộ dữ liệu mẫu mà seed nạp vào store.
// Với Users, trường Password giữ plaintext; seeder sẽ hash trước khi insert.
type FixtureSet struct {
	Users     []User
	Customers []Customer
	Invoices  []Invoice
	Revenue   []Revenue
}

// Mọi fixture mang UUID cố định để insert skip-on-conflict thật sự idempotent:
// chạy seed lần hai không tạo thêm dòng nào.
const (
	fixtureUserID = "410544b2-4001-4271-9855-fec4b6a6442a"

	customerEvilRabbit     = "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"
	customerDelbaOliveira  = "3958dc9e-712f-4377-85e9-fec4b6a6442a"
	customerLeeRobinson    = "3958dc9e-742f-4377-85e9-fec4b6a6442a"
	customerMichaelNovotny = "76d65c26-f784-44a2-ac19-586678f7c2f2"
	customerAmyBurns       = "cc27c14a-0acf-4f4a-a6c9-d45682c144b9"
	customerBalazsOrban    = "13d07535-c59e-4157-a011-f8d2ef4e0cbb"
)

// Placeholder trả về một bản copy mới của bộ dữ liệu demo.
func Placeholder() FixtureSet {
	return FixtureSet{
		Users: []User{
			{ID: fixtureUserID, Name: "User", Email: "user@nextmail.com", Password: "123456"},
		},
		Customers: []Customer{
			{ID: customerEvilRabbit, Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
			{ID: customerDelbaOliveira, Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
			{ID: customerLeeRobinson, Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
			{ID: customerMichaelNovotny, Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
			{ID: customerAmyBurns, Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
			{ID: customerBalazsOrban, Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
		},
		Invoices: []Invoice{
			{ID: "6b0e6018-52f6-47a8-a397-8ec82b1b1e09", CustomerID: customerEvilRabbit, Amount: 15795, Status: constants.InvoiceStatusPending, Date: fixtureDate("2022-12-06")},
			{ID: "a8b1db61-3f67-4f1d-9902-5a63a9f2e6d4", CustomerID: customerDelbaOliveira, Amount: 20348, Status: constants.InvoiceStatusPending, Date: fixtureDate("2022-11-14")},
			{ID: "5f1d9902-77e6-4a21-8de7-21a1f9c5a3be", CustomerID: customerAmyBurns, Amount: 3040, Status: constants.InvoiceStatusPaid, Date: fixtureDate("2022-10-29")},
			{ID: "9fd812ee-4b40-4f41-9cc3-3b0f2a8e6a01", CustomerID: customerMichaelNovotny, Amount: 44800, Status: constants.InvoiceStatusPaid, Date: fixtureDate("2023-09-10")},
			{ID: "c1302d1d-60ee-47bb-9b39-2040e72e0e3b", CustomerID: customerBalazsOrban, Amount: 34577, Status: constants.InvoiceStatusPending, Date: fixtureDate("2023-08-05")},
			{ID: "d2c6a10f-2f2a-4a89-9da2-1a2c97e24c25", CustomerID: customerLeeRobinson, Amount: 54246, Status: constants.InvoiceStatusPending, Date: fixtureDate("2023-07-16")},
			{ID: "126eed9c-c90c-4ef6-a4a8-fcf7408d3c66", CustomerID: customerEvilRabbit, Amount: 666, Status: constants.InvoiceStatusPending, Date: fixtureDate("2023-06-27")},
			{ID: "7e2f0f6a-8a7a-49a5-86b9-6b6f2dd44fa5", CustomerID: customerMichaelNovotny, Amount: 32545, Status: constants.InvoiceStatusPaid, Date: fixtureDate("2023-06-09")},
			{ID: "0f29ab5d-87a5-4f2a-bf6c-67b7c7b2e0e8", CustomerID: customerAmyBurns, Amount: 1250, Status: constants.InvoiceStatusPaid, Date: fixtureDate("2023-06-17")},
			{ID: "3a9b7e1b-df06-4f0c-b4fd-d7e2a7f39cd6", CustomerID: customerBalazsOrban, Amount: 8546, Status: constants.InvoiceStatusPaid, Date: fixtureDate("2023-06-07")},
			{ID: "5b7f0a8e-61c7-44d6-9c44-3c0a62e27f56", CustomerID: customerDelbaOliveira, Amount: 500, Status: constants.InvoiceStatusPaid, Date: fixtureDate("2023-08-19")},
			{ID: "81f2b8c6-6d42-4a2c-9f9a-12a9c10a88d3", CustomerID: customerBalazsOrban, Amount: 8945, Status: constants.InvoiceStatusPaid, Date: fixtureDate("2023-06-03")},
			{ID: "e50aaae3-a2a4-4a1d-bd12-91f3e9c2b6a6", CustomerID: customerLeeRobinson, Amount: 1000, Status: constants.InvoiceStatusPaid, Date: fixtureDate("2022-06-05")},
		},
		Revenue: []Revenue{
			{Month: "Jan", Revenue: 2000},
			{Month: "Feb", Revenue: 1800},
			{Month: "Mar", Revenue: 2200},
			{Month: "Apr", Revenue: 2500},
			{Month: "May", Revenue: 2300},
			{Month: "Jun", Revenue: 3200},
			{Month: "Jul", Revenue: 3500},
			{Month: "Aug", Revenue: 3700},
			{Month: "Sep", Revenue: 2500},
			{Month: "Oct", Revenue: 2800},
			{Month: "Nov", Revenue: 3000},
			{Month: "Dec", Revenue: 4800},
		},
	}
}

func fixtureDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic("invalid fixture date: " + value)
	}
	return t
}
