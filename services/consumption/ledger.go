// Package consumption implements the session tab: snack and toy purchases
// charged against product stock.
package consumption

import (
	"fmt"

	productRepo "recreio/database/repository/product"
	sessionRepo "recreio/database/repository/session"
	"recreio/models"
	"recreio/utils"

	"go.uber.org/zap"
)

// ErrInsufficientStock is returned when an increment would drive product
// stock below zero. No partial change happens.
var ErrInsufficientStock = productRepo.ErrInsufficientStock

// DefaultLedger implements Ledger.
type DefaultLedger struct {
	Sessions sessionRepo.SessionRepository
	Products productRepo.ProductRepository
	Notifier LowStockNotifier
}

// Increment takes one unit off the shelf and puts it on the tab. The unit
// price is snapshotted when the line is first created; an existing line
// keeps its original price.
func (l *DefaultLedger) Increment(sessionID, productID string) (*models.ActiveSession, error) {
	session, err := l.Sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}

	product, err := l.Products.AdjustStock(productID, -1)
	if err != nil {
		return nil, err
	}

	updated := false
	consumption := make([]models.ConsumptionItem, len(session.Consumption))
	copy(consumption, session.Consumption)
	for i := range consumption {
		if consumption[i].ProductID == productID {
			consumption[i].Quantity++
			updated = true
			break
		}
	}
	if !updated {
		consumption = append(consumption, models.ConsumptionItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  1,
		})
	}

	if err := l.Sessions.UpdateConsumption(sessionID, consumption); err != nil {
		l.rollbackStock(productID, +1)
		return nil, err
	}
	session.Consumption = consumption

	l.checkLowStock(product)
	return session, nil
}

// Decrement returns one unit to the shelf and takes it off the tab. The line
// disappears when its quantity reaches zero.
func (l *DefaultLedger) Decrement(sessionID, productID string) (*models.ActiveSession, error) {
	session, err := l.Sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}

	idx := lineIndex(session.Consumption, productID)
	if idx < 0 {
		return nil, fmt.Errorf("product %s is not on the session's tab", productID)
	}

	if _, err := l.Products.AdjustStock(productID, +1); err != nil {
		return nil, err
	}

	consumption := make([]models.ConsumptionItem, len(session.Consumption))
	copy(consumption, session.Consumption)
	consumption[idx].Quantity--
	if consumption[idx].Quantity <= 0 {
		consumption = append(consumption[:idx], consumption[idx+1:]...)
	}

	if err := l.Sessions.UpdateConsumption(sessionID, consumption); err != nil {
		l.rollbackStock(productID, -1)
		return nil, err
	}
	session.Consumption = consumption
	return session, nil
}

// Remove drops the whole line, returning its full quantity to the shelf.
func (l *DefaultLedger) Remove(sessionID, productID string) (*models.ActiveSession, error) {
	session, err := l.Sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}

	idx := lineIndex(session.Consumption, productID)
	if idx < 0 {
		return nil, fmt.Errorf("product %s is not on the session's tab", productID)
	}
	quantity := session.Consumption[idx].Quantity

	if _, err := l.Products.AdjustStock(productID, quantity); err != nil {
		return nil, err
	}

	consumption := make([]models.ConsumptionItem, len(session.Consumption))
	copy(consumption, session.Consumption)
	consumption = append(consumption[:idx], consumption[idx+1:]...)

	if err := l.Sessions.UpdateConsumption(sessionID, consumption); err != nil {
		l.rollbackStock(productID, -quantity)
		return nil, err
	}
	session.Consumption = consumption
	return session, nil
}

// rollbackStock undoes a stock adjustment after a failed session write. A
// rollback that itself fails is logged loudly: stock and tab have diverged
// and need operator attention.
func (l *DefaultLedger) rollbackStock(productID string, delta int) {
	if _, err := l.Products.AdjustStock(productID, delta); err != nil {
		utils.GetLogger().Error("stock rollback failed, inventory may be inconsistent",
			zap.String("productId", productID),
			zap.Int("delta", delta),
			zap.Error(err),
		)
	}
}

// checkLowStock files a deduplicated notice once the product crosses its
// threshold. Only shelf decrements can cross it, so this runs on Increment.
func (l *DefaultLedger) checkLowStock(product *models.Product) {
	if l.Notifier == nil || !product.LowOnStock() {
		return
	}
	if err := l.Notifier.NotifyLowStock(product); err != nil {
		utils.GetLogger().Warn("failed to send low-stock notice",
			zap.String("productId", product.ID),
			zap.Error(err),
		)
	}
}

func lineIndex(consumption []models.ConsumptionItem, productID string) int {
	for i := range consumption {
		if consumption[i].ProductID == productID {
			return i
		}
	}
	return -1
}
