package component

// Projectile is a shot fired by the ship.
type Projectile struct {
	Weapon Weapon
	Damage int
}
