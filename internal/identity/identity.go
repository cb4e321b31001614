package identity

// Identity - пара email/телефон, которую клиент предъявляет вместо аккаунта.
// Постоянных пользователей в системе нет, совпадение по одному из полей
// считается совпадением стороны.
type Identity struct {
	Email string
	Phone string
}

func (i Identity) Empty() bool {
	return i.Email == "" && i.Phone == ""
}

// Match - правило дизъюнкции: стороны совпадают, если равны непустые email
// ИЛИ непустые телефоны. Два пустых значения никогда не совпадают.
func Match(aEmail, aPhone, bEmail, bPhone string) bool {
	if aEmail != "" && aEmail == bEmail {
		return true
	}
	if aPhone != "" && aPhone == bPhone {
		return true
	}
	return false
}

// MatchIdentity - то же правило для готовых пар.
func MatchIdentity(a, b Identity) bool {
	return Match(a.Email, a.Phone, b.Email, b.Phone)
}
