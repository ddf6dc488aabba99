package images

import "eatsandthinks/internal/category"

// StockPools is the built-in stock photo set. Categories without a pool
// use the default one.
func StockPools() map[category.Category][]string {
	return map[category.Category][]string{
		category.Restaurant: {
			"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800&q=80",
			"https://images.unsplash.com/photo-1552566626-52f8b828add9?w=800&q=80",
			"https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=800&q=80",
			"https://images.unsplash.com/photo-1505275350441-83dcda8eeef5?w=800&q=80",
			"https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=800&q=80",
			"https://images.unsplash.com/photo-1579027989536-b7b1f875659b?w=800&q=80",
			"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800&q=80",
		},
		category.Bar: {
			"https://images.unsplash.com/photo-1572116469696-31de0f17cc34?w=800&q=80",
			"https://images.unsplash.com/photo-1514933651103-005eec06c04b?w=800&q=80",
			"https://images.unsplash.com/photo-1566417713940-fe7c737a9ef2?w=800&q=80",
			"https://images.unsplash.com/photo-1470337458703-46ad1756a187?w=800&q=80",
			"https://images.unsplash.com/photo-1532634922-8fe0b757fb13?w=800&q=80",
			"https://images.unsplash.com/photo-1551509134-eb7c5ea9ad2d?w=800&q=80",
		},
		category.Cafe: {
			"https://images.unsplash.com/photo-1554118811-1e0d58224f24?w=800&q=80",
			"https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=800&q=80",
			"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=800&q=80",
			"https://images.unsplash.com/photo-1445116572660-236099ec97a0?w=800&q=80",
			"https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=800&q=80",
			"https://images.unsplash.com/photo-1498804103079-a6351b050096?w=800&q=80",
		},
		category.IceCream: {
			"https://images.unsplash.com/photo-1564801629778-eabf6ed7d440?w=800&q=80",
			"https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=800&q=80",
			"https://images.unsplash.com/photo-1551024601-bec78aea704b?w=800&q=80",
			"https://images.unsplash.com/photo-1570197788417-0e82375c9371?w=800&q=80",
			"https://images.unsplash.com/photo-1497034825429-c343d7c6a68f?w=800&q=80",
			"https://images.unsplash.com/photo-1488900128323-21503983a07e?w=800&q=80",
		},
		category.FastFood: {
			"https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=800&q=80",
			"https://images.unsplash.com/photo-1586190848861-99aa4a171e90?w=800&q=80",
			"https://images.unsplash.com/photo-1550547660-d9450f859349?w=800&q=80",
			"https://images.unsplash.com/photo-1572802419224-296b0aeee0d9?w=800&q=80",
			"https://images.unsplash.com/photo-1594212699903-ec8a3eca50f5?w=800&q=80",
			"https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=800&q=80",
		},
		category.Pizzeria: {
			"https://images.unsplash.com/photo-1513104890138-7c749659a591?w=800&q=80",
			"https://images.unsplash.com/photo-1595708544948-c67f72ef5d2e?w=800&q=80",
			"https://images.unsplash.com/photo-1571407970349-bc81e7e96a47?w=800&q=80",
			"https://images.unsplash.com/photo-1534308983496-4fabb1a015ee?w=800&q=80",
			"https://images.unsplash.com/photo-1604382355076-af4b0eb60143?w=800&q=80",
			"https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=800&q=80",
		},
		category.Asian: {
			"https://images.unsplash.com/photo-1629712257540-e03dfbd96b0b?w=800&q=80",
			"https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=800&q=80",
			"https://images.unsplash.com/photo-1617093727343-374698b1b08d?w=800&q=80",
			"https://images.unsplash.com/photo-1611143669185-af224c5e3252?w=800&q=80",
			"https://images.unsplash.com/photo-1553621042-f6e147245754?w=800&q=80",
			"https://images.unsplash.com/photo-1585032226651-759b368d7246?w=800&q=80",
		},
		category.Bakery: {
			"https://images.unsplash.com/photo-1509440159596-0249088772ff?w=800&q=80",
			"https://images.unsplash.com/photo-1549931319-a545dcf3bc73?w=800&q=80",
			"https://images.unsplash.com/photo-1558961364-881f8a664864?w=800&q=80",
			"https://images.unsplash.com/photo-1574085733277-851d9d856a3a?w=800&q=80",
			"https://images.unsplash.com/photo-1483695028939-5bb13f8648b0?w=800&q=80",
			"https://images.unsplash.com/photo-1509440159596-0249088772ff?w=800&q=80",
		},
		category.Mexican: {
			"https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=800&q=80",
			"https://images.unsplash.com/photo-1565299585323-38174c13fae8?w=800&q=80",
			"https://images.unsplash.com/photo-1551504734-5ee1c4a1479b?w=800&q=80",
			"https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=800&q=80",
			"https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=800&q=80",
		},
		category.Italian: {
			"https://images.unsplash.com/photo-1598866594230-a7c12756260f?w=800&q=80",
			"https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=800&q=80",
			"https://images.unsplash.com/photo-1590947132387-155cc02fee76?w=800&q=80",
			"https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=800&q=80",
		},
		category.Vegetarian: {
			"https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=800&q=80",
			"https://images.unsplash.com/photo-1540420828642-fca2c5c18abb?w=800&q=80",
			"https://images.unsplash.com/photo-1533089860892-a7c6f0a88666?w=800&q=80",
			"https://images.unsplash.com/photo-1476224203421-9ac39bcb3327?w=800&q=80",
		},
		category.Seafood: {
			"https://images.unsplash.com/photo-1563379926898-05f4575a45d8?w=800&q=80",
			"https://images.unsplash.com/photo-1519708227888-3856c6c8220e?w=800&q=80",
			"https://images.unsplash.com/photo-1615141982883-c7ad0e69fd62?w=800&q=80",
			"https://images.unsplash.com/photo-1611250508553-951992e4b7b5?w=800&q=80",
		},
		category.Default: {
			"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800&q=80",
			"https://images.unsplash.com/photo-1552566626-52f8b828add9?w=800&q=80",
			"https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=800&q=80",
			"https://images.unsplash.com/photo-1505275350441-83dcda8eeef5?w=800&q=80",
			"https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=800&q=80",
		},
	}
}
