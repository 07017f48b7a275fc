// This file contains the static tables the class graph and the attribute
// registry are built from: spawn trajectories, the attribute decoder
// registry, archetype to class mappings and the class parent chains.
// The tables enumerate what the game replicates; they grow when the game
// adds new replicated properties.

package repparser

// spawnStats tells which trajectory a spawned actor reads, keyed by object
// or class name.
var spawnStats = map[string]spawnTrajectory{
	"TAGame.Ball_Breakout_TA": trajLocationAndRotation,
	"Archetypes.Ball.Ball_Breakout": trajLocationAndRotation,
	"TAGame.Ball_TA": trajLocationAndRotation,
	"Archetypes.Ball.Ball_BasketBall_Mutator": trajLocationAndRotation,
	"Archetypes.Ball.Ball_BasketBall": trajLocationAndRotation,
	"Archetypes.Ball.Ball_Default": trajLocationAndRotation,
	"Archetypes.Ball.Ball_Puck": trajLocationAndRotation,
	"Archetypes.Ball.CubeBall": trajLocationAndRotation,
	"TAGame.Car_Season_TA": trajLocationAndRotation,
	"TAGame.Car_TA": trajLocationAndRotation,
	"Archetypes.Car.Car_Default": trajLocationAndRotation,
	"Archetypes.GameEvent.GameEvent_Season:CarArchetype": trajLocationAndRotation,
	"TAGame.CameraSettingsActor_TA": trajLocation,
	"TAGame.CarComponent_Boost_TA": trajLocation,
	"TAGame.CarComponent_Dodge_TA": trajLocation,
	"TAGame.CarComponent_DoubleJump_TA": trajLocation,
	"TAGame.CarComponent_FlipCar_TA": trajLocation,
	"TAGame.CarComponent_Jump_TA": trajLocation,
	"TAGame.GameEvent_Season_TA": trajLocation,
	"TAGame.GameEvent_Soccar_TA": trajLocation,
	"TAGame.GameEvent_SoccarPrivate_TA": trajLocation,
	"TAGame.GameEvent_SoccarSplitscreen_TA": trajLocation,
	"TAGame.GRI_TA": trajLocation,
	"TAGame.PRI_TA": trajLocation,
	"TAGame.SpecialPickup_BallCarSpring_TA": trajLocation,
	"TAGame.SpecialPickup_BallFreeze_TA": trajLocation,
	"TAGame.SpecialPickup_BallGravity_TA": trajLocation,
	"TAGame.SpecialPickup_BallLasso_TA": trajLocation,
	"TAGame.SpecialPickup_BallVelcro_TA": trajLocation,
	"TAGame.SpecialPickup_Batarang_TA": trajLocation,
	"TAGame.SpecialPickup_BoostOverride_TA": trajLocation,
	"TAGame.SpecialPickup_GrapplingHook_TA": trajLocation,
	"TAGame.SpecialPickup_HitForce_TA": trajLocation,
	"TAGame.SpecialPickup_Swapper_TA": trajLocation,
	"TAGame.SpecialPickup_Tornado_TA": trajLocation,
	"TAGame.Team_Soccar_TA": trajLocation,
	"Archetypes.CarComponents.CarComponent_Boost": trajLocation,
	"Archetypes.CarComponents.CarComponent_Dodge": trajLocation,
	"Archetypes.CarComponents.CarComponent_DoubleJump": trajLocation,
	"Archetypes.CarComponents.CarComponent_FlipCar": trajLocation,
	"Archetypes.CarComponents.CarComponent_Jump": trajLocation,
	"Archetypes.GameEvent.GameEvent_Basketball": trajLocation,
	"Archetypes.GameEvent.GameEvent_BasketballPrivate": trajLocation,
	"Archetypes.GameEvent.GameEvent_BasketballSplitscreen": trajLocation,
	"Archetypes.GameEvent.GameEvent_Breakout": trajLocation,
	"Archetypes.GameEvent.GameEvent_Hockey": trajLocation,
	"Archetypes.GameEvent.GameEvent_HockeyPrivate": trajLocation,
	"Archetypes.GameEvent.GameEvent_HockeySplitscreen": trajLocation,
	"Archetypes.GameEvent.GameEvent_Items": trajLocation,
	"Archetypes.GameEvent.GameEvent_Season": trajLocation,
	"Archetypes.GameEvent.GameEvent_Soccar": trajLocation,
	"Archetypes.GameEvent.GameEvent_SoccarPrivate": trajLocation,
	"Archetypes.GameEvent.GameEvent_SoccarSplitscreen": trajLocation,
	"Archetypes.SpecialPickups.SpecialPickup_BallFreeze": trajLocation,
	"Archetypes.SpecialPickups.SpecialPickup_BallGrapplingHook": trajLocation,
	"Archetypes.SpecialPickups.SpecialPickup_BallLasso": trajLocation,
	"Archetypes.SpecialPickups.SpecialPickup_BallSpring": trajLocation,
	"Archetypes.SpecialPickups.SpecialPickup_BallVelcro": trajLocation,
	"Archetypes.SpecialPickups.SpecialPickup_Batarang": trajLocation,
	"Archetypes.SpecialPickups.SpecialPickup_BoostOverride": trajLocation,
	"Archetypes.SpecialPickups.SpecialPickup_CarSpring": trajLocation,
	"Archetypes.SpecialPickups.SpecialPickup_GravityWell": trajLocation,
	"Archetypes.SpecialPickups.SpecialPickup_StrongHit": trajLocation,
	"Archetypes.SpecialPickups.SpecialPickup_Swapper": trajLocation,
	"Archetypes.SpecialPickups.SpecialPickup_Tornado": trajLocation,
	"Archetypes.Teams.Team0": trajLocation,
	"Archetypes.Teams.Team1": trajLocation,
	"GameInfo_Basketball.GameInfo.GameInfo_Basketball:GameReplicationInfoArchetype": trajLocation,
	"GameInfo_Breakout.GameInfo.GameInfo_Breakout:GameReplicationInfoArchetype": trajLocation,
	"Gameinfo_Hockey.GameInfo.Gameinfo_Hockey:GameReplicationInfoArchetype": trajLocation,
	"GameInfo_Items.GameInfo.GameInfo_Items:GameReplicationInfoArchetype": trajLocation,
	"GameInfo_Season.GameInfo.GameInfo_Season:GameReplicationInfoArchetype": trajLocation,
	"GameInfo_Soccar.GameInfo.GameInfo_Soccar:GameReplicationInfoArchetype": trajLocation,
	"TAGame.Default__CameraSettingsActor_TA": trajLocation,
	"TAGame.Default__PRI_TA": trajLocation,
	"TheWorld:PersistentLevel.BreakOutActor_Platform_TA": trajLocation,
	"TheWorld:PersistentLevel.CrowdActor_TA": trajLocation,
	"TheWorld:PersistentLevel.CrowdManager_TA": trajLocation,
	"TheWorld:PersistentLevel.InMapScoreboard_TA": trajLocation,
	"TheWorld:PersistentLevel.VehiclePickup_Boost_TA": trajLocation,
}

// attributes is the attribute registry: fully-qualified replicated property
// name to decoder. Lookup is a single map access on the hot path; the
// literal is resolved once at package init.
var attributes = map[string]attrDecoder{
	"Engine.Actor:bBlockActors": decodeBoolean,
	"Engine.Actor:bCollideActors": decodeBoolean,
	"Engine.Actor:bHidden": decodeBoolean,
	"Engine.Actor:DrawScale": decodeFloat,
	"Engine.Actor:Role": decodeEnum,
	"Engine.GameReplicationInfo:bMatchIsOver": decodeBoolean,
	"Engine.GameReplicationInfo:GameClass": decodeFlagged,
	"Engine.GameReplicationInfo:ServerName": decodeString,
	"Engine.Pawn:PlayerReplicationInfo": decodeFlagged,
	"Engine.PlayerReplicationInfo:bBot": decodeBoolean,
	"Engine.PlayerReplicationInfo:bIsSpectator": decodeBoolean,
	"Engine.PlayerReplicationInfo:bReadyToPlay": decodeBoolean,
	"Engine.PlayerReplicationInfo:bWaitingPlayer": decodeBoolean,
	"Engine.PlayerReplicationInfo:Ping": decodeByte,
	"Engine.PlayerReplicationInfo:PlayerID": decodeInt,
	"Engine.PlayerReplicationInfo:PlayerName": decodeString,
	"Engine.PlayerReplicationInfo:RemoteUserData": decodeString,
	"Engine.PlayerReplicationInfo:Score": decodeInt,
	"Engine.PlayerReplicationInfo:Team": decodeFlagged,
	"Engine.PlayerReplicationInfo:UniqueId": decodeUniqueID,
	"Engine.TeamInfo:Score": decodeInt,
	"ProjectX.GRI_X:bGameStarted": decodeBoolean,
	"ProjectX.GRI_X:GameServerID": decodeQWord,
	"ProjectX.GRI_X:MatchGUID": decodeString,
	"ProjectX.GRI_X:ReplicatedGameMutatorIndex": decodeInt,
	"ProjectX.GRI_X:ReplicatedGamePlaylist": decodeInt,
	"ProjectX.GRI_X:Reservations": decodeReservation,
	"TAGame.Ball_Breakout_TA:AppliedDamage": decodeAppliedDamage,
	"TAGame.Ball_Breakout_TA:DamageIndex": decodeInt,
	"TAGame.Ball_Breakout_TA:LastTeamTouch": decodeByte,
	"TAGame.Ball_TA:GameEvent": decodeFlagged,
	"TAGame.Ball_TA:HitTeamNum": decodeByte,
	"TAGame.Ball_TA:ReplicatedAddedCarBounceScale": decodeFloat,
	"TAGame.Ball_TA:ReplicatedBallMaxLinearSpeedScale": decodeFloat,
	"TAGame.Ball_TA:ReplicatedBallScale": decodeFloat,
	"TAGame.Ball_TA:ReplicatedExplosionData": decodeExplosion,
	"TAGame.Ball_TA:ReplicatedExplosionDataExtended": decodeExtendedExplosion,
	"TAGame.Ball_TA:ReplicatedWorldBounceScale": decodeFloat,
	"TAGame.BreakOutActor_Platform_TA:DamageState": decodeDamageState,
	"TAGame.CameraSettingsActor_TA:bUsingBehindView": decodeBoolean,
	"TAGame.CameraSettingsActor_TA:bUsingSecondaryCamera": decodeBoolean,
	"TAGame.CameraSettingsActor_TA:CameraPitch": decodeByte,
	"TAGame.CameraSettingsActor_TA:CameraYaw": decodeByte,
	"TAGame.CameraSettingsActor_TA:PRI": decodeFlagged,
	"TAGame.CameraSettingsActor_TA:ProfileSettings": decodeCamSettings,
	"TAGame.Car_TA:AddedBallForceMultiplier": decodeFloat,
	"TAGame.Car_TA:AddedCarForceMultiplier": decodeFloat,
	"TAGame.Car_TA:AttachedPickup": decodeFlagged,
	"TAGame.Car_TA:ClubColors": decodeClubColors,
	"TAGame.Car_TA:ReplicatedDemolish": decodeDemolish,
	"TAGame.Car_TA:TeamPaint": decodeTeamPaint,
	"TAGame.CarComponent_Boost_TA:bNoBoost": decodeBoolean,
	"TAGame.CarComponent_Boost_TA:BoostModifier": decodeFloat,
	"TAGame.CarComponent_Boost_TA:bUnlimitedBoost": decodeBoolean,
	"TAGame.CarComponent_Boost_TA:RechargeDelay": decodeFloat,
	"TAGame.CarComponent_Boost_TA:RechargeRate": decodeFloat,
	"TAGame.CarComponent_Boost_TA:ReplicatedBoostAmount": decodeByte,
	"TAGame.CarComponent_Boost_TA:UnlimitedBoostRefCount": decodeInt,
	"TAGame.CarComponent_Dodge_TA:DodgeTorque": decodeLocation,
	"TAGame.CarComponent_FlipCar_TA:bFlipRight": decodeBoolean,
	"TAGame.CarComponent_FlipCar_TA:FlipCarTime": decodeFloat,
	"TAGame.CarComponent_TA:ReplicatedActive": decodeByte,
	"TAGame.CarComponent_TA:ReplicatedActivityTime": decodeFloat,
	"TAGame.CarComponent_TA:Vehicle": decodeFlagged,
	"TAGame.CrowdActor_TA:GameEvent": decodeFlagged,
	"TAGame.CrowdActor_TA:ModifiedNoise": decodeFloat,
	"TAGame.CrowdActor_TA:ReplicatedCountDownNumber": decodeInt,
	"TAGame.CrowdActor_TA:ReplicatedOneShotSound": decodeFlagged,
	"TAGame.CrowdActor_TA:ReplicatedRoundCountDownNumber": decodeInt,
	"TAGame.CrowdManager_TA:GameEvent": decodeFlagged,
	"TAGame.CrowdManager_TA:ReplicatedGlobalOneShotSound": decodeInt,
	"TAGame.GameEvent_Soccar_TA:bBallHasBeenHit": decodeBoolean,
	"TAGame.GameEvent_Soccar_TA:bOverTime": decodeBoolean,
	"TAGame.GameEvent_Soccar_TA:GameTime": decodeInt,
	"TAGame.GameEvent_Soccar_TA:ReplicatedMusicStinger": decodeMusicStinger,
	"TAGame.GameEvent_Soccar_TA:ReplicatedScoredOnTeam": decodeByte,
	"TAGame.GameEvent_Soccar_TA:RoundNum": decodeInt,
	"TAGame.GameEvent_Soccar_TA:SecondsRemaining": decodeInt,
	"TAGame.GameEvent_Soccar_TA:SubRulesArchetype": decodeFlagged,
	"TAGame.GameEvent_SoccarPrivate_TA:MatchSettings": decodePrivateMatchSettings,
	"TAGame.GameEvent_TA:bCanVoteToForfeit": decodeBoolean,
	"TAGame.GameEvent_TA:bHasLeaveMatchPenalty": decodeBoolean,
	"TAGame.GameEvent_TA:BotSkill": decodeInt,
	"TAGame.GameEvent_TA:GameMode": decodeGameMode,
	"TAGame.GameEvent_TA:MatchTypeClass": decodeFlagged,
	"TAGame.GameEvent_TA:ReplicatedGameStateTimeRemaining": decodeInt,
	"TAGame.GameEvent_TA:ReplicatedStateIndex": decodeByte,
	"TAGame.GameEvent_TA:ReplicatedStateName": decodeInt,
	"TAGame.GameEvent_Team_TA:bForfeit": decodeBoolean,
	"TAGame.GameEvent_Team_TA:MaxTeamSize": decodeInt,
	"TAGame.GRI_TA:NewDedicatedServerIP": decodeString,
	"TAGame.PRI_TA:bIsInSplitScreen": decodeBoolean,
	"TAGame.PRI_TA:bMatchMVP": decodeBoolean,
	"TAGame.PRI_TA:bOnlineLoadoutSet": decodeBoolean,
	"TAGame.PRI_TA:bOnlineLoadoutsSet": decodeBoolean,
	"TAGame.PRI_TA:BotProductName": decodeInt,
	"TAGame.PRI_TA:bReady": decodeBoolean,
	"TAGame.PRI_TA:bUsingBehindView": decodeBoolean,
	"TAGame.PRI_TA:bUsingItems": decodeBoolean,
	"TAGame.PRI_TA:bUsingSecondaryCamera": decodeBoolean,
	"TAGame.PRI_TA:CameraPitch": decodeByte,
	"TAGame.PRI_TA:CameraSettings": decodeCamSettings,
	"TAGame.PRI_TA:CameraYaw": decodeByte,
	"TAGame.PRI_TA:ClientLoadout": decodeLoadout,
	"TAGame.PRI_TA:ClientLoadoutOnline": decodeLoadoutOnline,
	"TAGame.PRI_TA:ClientLoadouts": decodeTeamLoadout,
	"TAGame.PRI_TA:ClientLoadoutsOnline": decodeLoadoutsOnline,
	"TAGame.PRI_TA:MatchAssists": decodeInt,
	"TAGame.PRI_TA:MatchBreakoutDamage": decodeInt,
	"TAGame.PRI_TA:MatchGoals": decodeInt,
	"TAGame.PRI_TA:MatchSaves": decodeInt,
	"TAGame.PRI_TA:MatchScore": decodeInt,
	"TAGame.PRI_TA:MatchShots": decodeInt,
	"TAGame.PRI_TA:MaxTimeTillItem": decodeInt,
	"TAGame.PRI_TA:PartyLeader": decodePartyLeader,
	"TAGame.PRI_TA:PawnType": decodeByte,
	"TAGame.PRI_TA:PersistentCamera": decodeFlagged,
	"TAGame.PRI_TA:PlayerHistoryValid": decodeBoolean,
	"TAGame.PRI_TA:ReplicatedGameEvent": decodeFlagged,
	"TAGame.PRI_TA:SteeringSensitivity": decodeFloat,
	"TAGame.PRI_TA:TimeTillItem": decodeInt,
	"TAGame.PRI_TA:Title": decodeInt,
	"TAGame.PRI_TA:TotalXP": decodeInt,
	"TAGame.RBActor_TA:bFrozen": decodeBoolean,
	"TAGame.RBActor_TA:bIgnoreSyncing": decodeBoolean,
	"TAGame.RBActor_TA:bReplayActor": decodeBoolean,
	"TAGame.RBActor_TA:ReplicatedRBState": decodeRigidBody,
	"TAGame.RBActor_TA:WeldedInfo": decodeWelded,
	"TAGame.SpecialPickup_BallFreeze_TA:RepOrigSpeed": decodeFloat,
	"TAGame.SpecialPickup_BallVelcro_TA:AttachTime": decodeFloat,
	"TAGame.SpecialPickup_BallVelcro_TA:bBroken": decodeBoolean,
	"TAGame.SpecialPickup_BallVelcro_TA:bHit": decodeBoolean,
	"TAGame.SpecialPickup_BallVelcro_TA:BreakTime": decodeFloat,
	"TAGame.SpecialPickup_Targeted_TA:Targeted": decodeFlagged,
	"TAGame.Team_Soccar_TA:GameScore": decodeInt,
	"TAGame.Team_TA:ClubColors": decodeClubColors,
	"TAGame.Team_TA:CustomTeamName": decodeString,
	"TAGame.Team_TA:GameEvent": decodeFlagged,
	"TAGame.Team_TA:LogoData": decodeFlagged,
	"TAGame.Vehicle_TA:bDriving": decodeBoolean,
	"TAGame.Vehicle_TA:bReplicatedHandbrake": decodeBoolean,
	"TAGame.Vehicle_TA:ReplicatedSteer": decodeByte,
	"TAGame.Vehicle_TA:ReplicatedThrottle": decodeByte,
	"TAGame.VehiclePickup_TA:bNoPickup": decodeBoolean,
	"TAGame.VehiclePickup_TA:ReplicatedPickupData": decodePickup,
}

// objectClasses maps archetype object names to the concrete class that
// backs them. Objects not listed are classes themselves.
var objectClasses = map[string]string{
	"Archetypes.Ball.Ball_BasketBall_Mutator": "TAGame.Ball_TA",
	"Archetypes.Ball.Ball_Basketball": "TAGame.Ball_TA",
	"Archetypes.Ball.Ball_Breakout": "TAGame.Ball_Breakout_TA",
	"Archetypes.Ball.Ball_Default": "TAGame.Ball_TA",
	"Archetypes.Ball.Ball_Puck": "TAGame.Ball_TA",
	"Archetypes.Ball.CubeBall": "TAGame.Ball_TA",
	"Archetypes.Car.Car_Default": "TAGame.Car_TA",
	"Archetypes.CarComponents.CarComponent_Boost": "TAGame.CarComponent_Boost_TA",
	"Archetypes.CarComponents.CarComponent_Dodge": "TAGame.CarComponent_Dodge_TA",
	"Archetypes.CarComponents.CarComponent_DoubleJump": "TAGame.CarComponent_DoubleJump_TA",
	"Archetypes.CarComponents.CarComponent_FlipCar": "TAGame.CarComponent_FlipCar_TA",
	"Archetypes.CarComponents.CarComponent_Jump": "TAGame.CarComponent_Jump_TA",
	"Archetypes.GameEvent.GameEvent_Basketball": "TAGame.GameEvent_Soccar_TA",
	"Archetypes.GameEvent.GameEvent_BasketballPrivate": "TAGame.GameEvent_SoccarPrivate_TA",
	"Archetypes.GameEvent.GameEvent_BasketballSplitscreen": "TAGame.GameEvent_SoccarSplitscreen_TA",
	"Archetypes.GameEvent.GameEvent_Breakout": "TAGame.GameEvent_Soccar_TA",
	"Archetypes.GameEvent.GameEvent_Hockey": "TAGame.GameEvent_Soccar_TA",
	"Archetypes.GameEvent.GameEvent_HockeyPrivate": "TAGame.GameEvent_SoccarPrivate_TA",
	"Archetypes.GameEvent.GameEvent_HockeySplitscreen": "TAGame.GameEvent_SoccarSplitscreen_TA",
	"Archetypes.GameEvent.GameEvent_Items": "TAGame.GameEvent_Soccar_TA",
	"Archetypes.GameEvent.GameEvent_Season:CarArchetype": "TAGame.Car_TA",
	"Archetypes.GameEvent.GameEvent_Season": "TAGame.GameEvent_Season_TA",
	"Archetypes.GameEvent.GameEvent_Soccar": "TAGame.GameEvent_Soccar_TA",
	"Archetypes.GameEvent.GameEvent_SoccarPrivate": "TAGame.GameEvent_SoccarPrivate_TA",
	"Archetypes.GameEvent.GameEvent_SoccarSplitscreen": "TAGame.GameEvent_SoccarSplitscreen_TA",
	"Archetypes.SpecialPickups.SpecialPickup_BallFreeze": "TAGame.SpecialPickup_BallFreeze_TA",
	"Archetypes.SpecialPickups.SpecialPickup_BallGrapplingHook": "TAGame.SpecialPickup_GrapplingHook_TA",
	"Archetypes.SpecialPickups.SpecialPickup_BallLasso": "TAGame.SpecialPickup_BallLasso_TA",
	"Archetypes.SpecialPickups.SpecialPickup_BallSpring": "TAGame.SpecialPickup_BallCarSpring_TA",
	"Archetypes.SpecialPickups.SpecialPickup_BallVelcro": "TAGame.SpecialPickup_BallVelcro_TA",
	"Archetypes.SpecialPickups.SpecialPickup_Batarang": "TAGame.SpecialPickup_Batarang_TA",
	"Archetypes.SpecialPickups.SpecialPickup_BoostOverride": "TAGame.SpecialPickup_BoostOverride_TA",
	"Archetypes.SpecialPickups.SpecialPickup_CarSpring": "TAGame.SpecialPickup_BallCarSpring_TA",
	"Archetypes.SpecialPickups.SpecialPickup_GravityWell": "TAGame.SpecialPickup_BallGravity_TA",
	"Archetypes.SpecialPickups.SpecialPickup_StrongHit": "TAGame.SpecialPickup_HitForce_TA",
	"Archetypes.SpecialPickups.SpecialPickup_Swapper": "TAGame.SpecialPickup_Swapper_TA",
	"Archetypes.SpecialPickups.SpecialPickup_Tornado": "TAGame.SpecialPickup_Tornado_TA",
	"Archetypes.Teams.Team0": "TAGame.Team_Soccar_TA",
	"Archetypes.Teams.Team1": "TAGame.Team_Soccar_TA",
	"GameInfo_Basketball.GameInfo.GameInfo_Basketball:GameReplicationInfoArchetype": "TAGame.GRI_TA",
	"GameInfo_Breakout.GameInfo.GameInfo_Breakout:GameReplicationInfoArchetype": "TAGame.GRI_TA",
	"Gameinfo_Hockey.GameInfo.Gameinfo_Hockey:GameReplicationInfoArchetype": "TAGame.GRI_TA",
	"GameInfo_Items.GameInfo.GameInfo_Items:GameReplicationInfoArchetype": "TAGame.GRI_TA",
	"GameInfo_Season.GameInfo.GameInfo_Season:GameReplicationInfoArchetype": "TAGame.GRI_TA",
	"GameInfo_Soccar.GameInfo.GameInfo_Soccar:GameReplicationInfoArchetype": "TAGame.GRI_TA",
	"TAGame.Default__CameraSettingsActor_TA": "TAGame.CameraSettingsActor_TA",
	"TAGame.Default__PRI_TA": "TAGame.PRI_TA",
	"TheWorld:PersistentLevel.BreakOutActor_Platform_TA": "TAGame.BreakOutActor_Platform_TA",
	"TheWorld:PersistentLevel.CrowdActor_TA": "TAGame.CrowdActor_TA",
	"TheWorld:PersistentLevel.CrowdManager_TA": "TAGame.CrowdManager_TA",
	"TheWorld:PersistentLevel.InMapScoreboard_TA": "TAGame.InMapScoreboard_TA",
	"TheWorld:PersistentLevel.VehiclePickup_Boost_TA": "TAGame.VehiclePickup_Boost_TA",
}

// parentClasses is the single-parent class inheritance table used when a
// net cache entry does not link its parent itself.
var parentClasses = map[string]string{
	"Engine.Actor": "Core.Object",
	"Engine.GameReplicationInfo": "Engine.ReplicationInfo",
	"Engine.Info": "Engine.Actor",
	"Engine.Pawn": "Engine.Actor",
	"Engine.PlayerReplicationInfo": "Engine.ReplicationInfo",
	"Engine.ReplicationInfo": "Engine.Info",
	"Engine.TeamInfo": "Engine.ReplicationInfo",
	"ProjectX.GRI_X": "Engine.GameReplicationInfo",
	"ProjectX.Pawn_X": "Engine.Pawn",
	"ProjectX.PRI_X": "Engine.PlayerReplicationInfo",
	"TAGame.Ball_TA": "TAGame.RBActor_TA",
	"TAGame.CameraSettingsActor_TA": "Engine.ReplicationInfo",
	"TAGame.Car_Season_TA": "TAGame.PRI_TA",
	"TAGame.Car_TA": "TAGame.Vehicle_TA",
	"TAGame.CarComponent_Boost_TA": "TAGame.CarComponent_TA",
	"TAGame.CarComponent_Dodge_TA": "TAGame.CarComponent_TA",
	"TAGame.CarComponent_DoubleJump_TA": "TAGame.CarComponent_TA",
	"TAGame.CarComponent_FlipCar_TA": "TAGame.CarComponent_TA",
	"TAGame.CarComponent_Jump_TA": "TAGame.CarComponent_TA",
	"TAGame.CarComponent_TA": "Engine.ReplicationInfo",
	"TAGame.CrowdActor_TA": "Engine.ReplicationInfo",
	"TAGame.CrowdManager_TA": "Engine.ReplicationInfo",
	"TAGame.GameEvent_Season_TA": "TAGame.GameEvent_Soccar_TA",
	"TAGame.GameEvent_Soccar_TA": "TAGame.GameEvent_Team_TA",
	"TAGame.GameEvent_SoccarPrivate_TA": "TAGame.GameEvent_Soccar_TA",
	"TAGame.GameEvent_SoccarSplitscreen_TA": "TAGame.GameEvent_SoccarPrivate_TA",
	"TAGame.GameEvent_TA": "Engine.ReplicationInfo",
	"TAGame.GameEvent_Team_TA": "TAGame.GameEvent_TA",
	"TAGame.GRI_TA": "ProjectX.GRI_X",
	"TAGame.InMapScoreboard_TA": "Engine.Actor",
	"TAGame.PRI_TA": "ProjectX.PRI_X",
	"TAGame.RBActor_TA": "ProjectX.Pawn_X",
	"TAGame.SpecialPickup_BallCarSpring_TA": "TAGame.SpecialPickup_Spring_TA",
	"TAGame.SpecialPickup_BallFreeze_TA": "TAGame.SpecialPickup_Targeted_TA",
	"TAGame.SpecialPickup_BallGravity_TA": "TAGame.SpecialPickup_TA",
	"TAGame.SpecialPickup_BallLasso_TA": "TAGame.SpecialPickup_GrapplingHook_TA",
	"TAGame.SpecialPickup_BallVelcro_TA": "TAGame.SpecialPickup_TA",
	"TAGame.SpecialPickup_Batarang_TA": "TAGame.SpecialPickup_BallLasso_TA",
	"TAGame.SpecialPickup_BoostOverride_TA": "TAGame.SpecialPickup_Targeted_TA",
	"TAGame.SpecialPickup_GrapplingHook_TA": "TAGame.SpecialPickup_Targeted_TA",
	"TAGame.SpecialPickup_HitForce_TA": "TAGame.SpecialPickup_TA",
	"TAGame.SpecialPickup_Spring_TA": "TAGame.SpecialPickup_Targeted_TA",
	"TAGame.SpecialPickup_Swapper_TA": "TAGame.SpecialPickup_Targeted_TA",
	"TAGame.SpecialPickup_TA": "TAGame.CarComponent_TA",
	"TAGame.SpecialPickup_Targeted_TA": "TAGame.SpecialPickup_TA",
	"TAGame.SpecialPickup_Tornado_TA": "TAGame.SpecialPickup_TA",
	"TAGame.Team_Soccar_TA": "TAGame.Team_TA",
	"TAGame.Team_TA": "Engine.TeamInfo",
	"TAGame.Vehicle_TA": "TAGame.RBActor_TA",
	"TAGame.VehiclePickup_Boost_TA": "TAGame.VehiclePickup_TA",
	"TAGame.VehiclePickup_TA": "Engine.ReplicationInfo",
}
