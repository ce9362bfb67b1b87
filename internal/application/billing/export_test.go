package billing

import "time"

// Ganchos solo para tests: fijan el reloj de los casos de uso.

func (uc *InvoiceUseCase) SetClock(now func() time.Time)  { uc.now = now }
func (uc *PaymentUseCase) SetClock(now func() time.Time)  { uc.now = now }
func (uc *CustomerUseCase) SetClock(now func() time.Time) { uc.now = now }
