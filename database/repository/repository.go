package repository

import (
	cashRepo "recreio/database/repository/cashsession"
	checkoutRepo "recreio/database/repository/checkout"
	couponRepo "recreio/database/repository/coupon"
	noticeRepo "recreio/database/repository/notice"
	productRepo "recreio/database/repository/product"
	saleRepo "recreio/database/repository/sale"
	sessionRepo "recreio/database/repository/session"
	settingsRepo "recreio/database/repository/settings"
)

// Re-export the repository interfaces and constructors.

type SessionRepository = sessionRepo.SessionRepository

var NewMongoSessionRepo = sessionRepo.NewMongoSessionRepo

type ProductRepository = productRepo.ProductRepository

var NewMongoProductRepo = productRepo.NewMongoProductRepo

type CouponRepository = couponRepo.CouponRepository

var NewMongoCouponRepo = couponRepo.NewMongoCouponRepo

type SaleRepository = saleRepo.SaleRepository

var NewMongoSaleRepo = saleRepo.NewMongoSaleRepo

type CashSessionRepository = cashRepo.CashSessionRepository

var NewMongoCashSessionRepo = cashRepo.NewMongoCashSessionRepo

type SettingsRepository = settingsRepo.SettingsRepository

var NewMongoSettingsRepo = settingsRepo.NewMongoSettingsRepo

type NoticeRepository = noticeRepo.NoticeRepository

var NewMongoNoticeRepo = noticeRepo.NewMongoNoticeRepo

type CheckoutRepository = checkoutRepo.CheckoutRepository

var NewMongoCheckoutRepo = checkoutRepo.NewMongoCheckoutRepo
