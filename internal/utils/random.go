package utils

import (
	"fmt"
	"math/rand"

	"github.com/muniapms/task-scheduler/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"Smith", "Jones", "Brown", "Taylor", "Wilson", "Evans", "Walker", "Wright",
}
var commonGivenNames = []string{
	"伟", "芳", "敏", "静", "杰", "涛", "明", "磊",
	"Anna", "Ben", "Chloe", "Dan", "Ella", "Finn", "Grace", "Max",
}

func GenerateRandomFullName() string {
	given := commonGivenNames[rand.Intn(len(commonGivenNames))]
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	return given + " " + surname
}

var digits = "0123456789"

func GenerateUsernameFromFullName(fullName string) string {
	username := PersonSlug(fullName)

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         domain.RoleMember,
	}

	return user, nil
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

func GenerateRandomID(letterLength int, digitLength int) string {
	randomID := make([]rune, letterLength+digitLength)
	for i := range randomID {
		if i < letterLength {
			randomID[i] = letters[rand.Intn(len(letters))]
		} else {
			randomID[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(randomID)
}

// GenerateRandomAvailability marks each (person, day) unavailable with probability 1/oneIn.
func GenerateRandomAvailability(team *domain.Team, oneIn int) map[string][]string {
	raw := make(map[string][]string, len(team.People))
	for _, person := range team.People {
		raw[string(person)] = []string{}
		for _, day := range domain.Weekdays {
			if rand.Intn(oneIn) == 0 {
				raw[string(person)] = append(raw[string(person)], day.DisplayName())
			}
		}
	}
	return raw
}

// GenerateRandomHolidays returns at most one holiday, with probability 1/oneIn.
func GenerateRandomHolidays(oneIn int) []string {
	if rand.Intn(oneIn) != 0 {
		return []string{}
	}
	return []string{string(domain.Weekdays[rand.Intn(len(domain.Weekdays))])}
}

func GenerateDraftID() string {
	return fmt.Sprintf("draft-%s", GenerateRandomID(6, 4))
}
